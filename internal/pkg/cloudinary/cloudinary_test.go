package cloudinary

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewServiceRequiresCredentials(t *testing.T) {
	_, err := NewService("", "key", "secret", "movira")
	require.Error(t, err)

	svc, err := NewService("demo", "key", "secret", "")
	require.NoError(t, err)
	require.Equal(t, "movira", svc.uploadFolder)
}

func TestValidateImageFile(t *testing.T) {
	ok := &multipart.FileHeader{Filename: "me.PNG", Size: 1024}
	require.NoError(t, ValidateImageFile(ok))

	tooBig := &multipart.FileHeader{Filename: "me.jpg", Size: MaxImageSize + 1}
	require.Error(t, ValidateImageFile(tooBig))

	wrongType := &multipart.FileHeader{Filename: "me.pdf", Size: 1024}
	require.Error(t, ValidateImageFile(wrongType))
}

func TestIsHostedURL(t *testing.T) {
	require.True(t, IsHostedURL("https://res.cloudinary.com/demo/image/upload/v1/movira/avatars/x.jpg"))
	require.False(t, IsHostedURL("https://ui-avatars.com/api/?name=Jane"))
	require.False(t, IsHostedURL(""))
}

func TestPublicIDFromURL(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
	}{
		{
			"versioned delivery url",
			"https://res.cloudinary.com/demo/image/upload/v1712345678/movira/avatars/abc123.jpg",
			"movira/avatars/abc123",
		},
		{
			"no version segment",
			"https://res.cloudinary.com/demo/image/upload/movira/avatars/abc123.png",
			"movira/avatars/abc123",
		},
		{
			"folder starting with v is kept",
			"https://res.cloudinary.com/demo/image/upload/videos/abc123.jpg",
			"videos/abc123",
		},
		{
			"not a delivery url",
			"https://ui-avatars.com/api/?name=Jane",
			"",
		},
		{
			"upload with nothing after it",
			"https://res.cloudinary.com/demo/image/upload",
			"",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, PublicIDFromURL(tc.url))
		})
	}
}
