// Package probe extracts structural metadata from raw blobs. It never fails:
// opaque or corrupt blobs degrade to a zero metadata record and downstream
// scoring takes the unknown-format path.
package probe

import (
	"bytes"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/bep/imagemeta"
	"github.com/corona10/goimagehash"

	analysis "github.com/copyrightchain/ai-verifier/internal/domain/analysis"
)

// maxFingerprintBytes caps full decodes for perceptual hashing; header-only
// probing stays cheap regardless of blob size.
const maxFingerprintBytes = 8 << 20

// Probe is a stateless image inspector.
type Probe struct{}

func New() *Probe { return &Probe{} }

// Probe parses dimensions and encoding from the blob header, then enriches
// the record with EXIF authorship fields and a perceptual fingerprint where
// the blob allows it. Unparsable input yields the zero record.
func (p *Probe) Probe(blob []byte) analysis.ObjectMetadata {
	if len(blob) == 0 {
		return analysis.ObjectMetadata{}
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(blob))
	if err != nil {
		return analysis.ObjectMetadata{}
	}

	meta := analysis.ObjectMetadata{
		WidthPx:  uint(cfg.Width),
		HeightPx: uint(cfg.Height),
		Encoding: format,
		ByteSize: uint(len(blob)),
	}
	p.enrichAuthorship(blob, format, &meta)
	p.fingerprint(blob, &meta)
	return meta
}

// metaFormats maps DecodeConfig format names to the formats imagemeta can
// walk. It has no format auto-detection, so the decoder must be named
// explicitly; formats outside this map (gif, bmp) carry no EXIF it can read.
var metaFormats = map[string]imagemeta.ImageFormat{
	"jpeg": imagemeta.JPEG,
	"png":  imagemeta.PNG,
	"tiff": imagemeta.TIFF,
	"webp": imagemeta.WebP,
}

// enrichAuthorship pulls EXIF Artist/Copyright when present. Best effort;
// parse errors leave the fields empty.
func (p *Probe) enrichAuthorship(blob []byte, format string, meta *analysis.ObjectMetadata) {
	imageFormat, ok := metaFormats[format]
	if !ok {
		return
	}

	wanted := map[string]bool{
		"Artist":    true,
		"Copyright": true,
	}

	err := imagemeta.Decode(imagemeta.Options{
		R:           bytes.NewReader(blob),
		ImageFormat: imageFormat,
		Sources:     imagemeta.EXIF,
		ShouldHandleTag: func(ti imagemeta.TagInfo) bool {
			return wanted[ti.Tag]
		},
		HandleTag: func(ti imagemeta.TagInfo) error {
			s, ok := ti.Value.(string)
			if !ok || s == "" {
				return nil
			}
			switch ti.Tag {
			case "Artist":
				meta.ExifArtist = s
			case "Copyright":
				meta.ExifCopyright = s
			}
			return nil
		},
	})
	if err != nil {
		meta.ExifArtist = ""
		meta.ExifCopyright = ""
	}
}

// fingerprint computes a perceptual hash for blobs small enough to decode
// fully. The hash feeds the verdict detail only; scoring does not depend on it.
func (p *Probe) fingerprint(blob []byte, meta *analysis.ObjectMetadata) {
	if len(blob) > maxFingerprintBytes {
		return
	}
	img, _, err := image.Decode(bytes.NewReader(blob))
	if err != nil {
		return
	}
	hash, err := goimagehash.PerceptionHash(img)
	if err != nil {
		return
	}
	meta.PerceptualHash = hash.ToString()
}
