package handlers

import (
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerconnect/internal/common"
)

func TestIDFromPath(t *testing.T) {
	id := common.NewUUID()

	req := httptest.NewRequest("PATCH", "/applications/"+id.String()+"/status", nil)
	parsed, err := idFromPath(req, 2)
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	req = httptest.NewRequest("DELETE", "/applications/company/"+id.String(), nil)
	parsed, err = idFromPath(req, 3)
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	req = httptest.NewRequest("DELETE", "/applications/not-a-uuid", nil)
	_, err = idFromPath(req, 2)
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeValidation))

	req = httptest.NewRequest("GET", "/applications", nil)
	_, err = idFromPath(req, 2)
	require.Error(t, err)
}

func TestAllowedUploadType(t *testing.T) {
	assert.True(t, allowedUploadType("image/png"))
	assert.True(t, allowedUploadType("image/jpeg"))
	assert.True(t, allowedUploadType("application/pdf"))
	assert.False(t, allowedUploadType("application/zip"))
	assert.False(t, allowedUploadType("text/html"))
	assert.False(t, allowedUploadType(""))
}

func TestCheckUploadHeader(t *testing.T) {
	header := &multipart.FileHeader{
		Filename: "cv.pdf",
		Size:     100,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"application/pdf"}},
	}
	require.NoError(t, checkUploadHeader(header, "cvImage", 1000))

	header.Size = 2000
	err := checkUploadHeader(header, "cvImage", 1000)
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeValidation))

	header.Size = 100
	header.Header.Set("Content-Type", "application/zip")
	err = checkUploadHeader(header, "cvImage", 1000)
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeValidation))
}
