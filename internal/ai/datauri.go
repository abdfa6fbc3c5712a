package ai

import (
	"encoding/base64"
	"regexp"
	"strings"
)

const (
	fallbackMIMEType = "image/jpeg"
	pngMIMEType      = "image/png"
)

var (
	dataURIPattern      = regexp.MustCompile(`^data:(image/[a-zA-Z+]+);base64,(.+)$`)
	knownImagePrefixRxp = regexp.MustCompile(`^data:image/(png|jpeg|jpg|webp);base64,`)
	imageMIMEPattern    = regexp.MustCompile(`^image/[a-zA-Z+]+$`)
)

// SupportedImageType reports whether mimeType survives ParseDataURI as-is.
func SupportedImageType(mimeType string) bool {
	return imageMIMEPattern.MatchString(mimeType)
}

// DataURI is an image payload split into its MIME type and base64 text.
type DataURI struct {
	MIMEType string
	Data     string
}

// ParseDataURI splits a data:<mime>;base64,<data> string. Input of any other
// shape is accepted: the MIME type becomes image/jpeg and only a common image
// prefix is stripped, so malformed payloads reach the remote service as-is.
func ParseDataURI(s string) DataURI {
	if m := dataURIPattern.FindStringSubmatch(s); m != nil {
		return DataURI{MIMEType: m[1], Data: m[2]}
	}
	return DataURI{
		MIMEType: fallbackMIMEType,
		Data:     knownImagePrefixRxp.ReplaceAllString(s, ""),
	}
}

// Bytes decodes the payload. Text that is not valid base64 is returned as
// its raw bytes.
func (d DataURI) Bytes() []byte {
	clean := strings.Join(strings.Fields(d.Data), "")
	if b, err := base64.StdEncoding.DecodeString(clean); err == nil {
		return b
	}
	if b, err := base64.RawStdEncoding.DecodeString(strings.TrimRight(clean, "=")); err == nil {
		return b
	}
	return []byte(d.Data)
}

func (d DataURI) String() string {
	return "data:" + d.MIMEType + ";base64," + d.Data
}

// EncodeDataURI wraps raw bytes as a base64 data URI.
func EncodeDataURI(mimeType string, data []byte) string {
	return DataURI{MIMEType: mimeType, Data: base64.StdEncoding.EncodeToString(data)}.String()
}
