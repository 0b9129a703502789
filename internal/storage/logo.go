package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/sharpcut-app/sharpcut-api/internal/config"
	"github.com/sharpcut-app/sharpcut-api/internal/httperr"
)

// MaxLogoBytes is enforced before the upload is read in full.
const MaxLogoBytes = 2 << 20 // 2MB

const maxLogoEdge = 512

// LogoUploader normalizes shop logos (downscale, webp) and stores
// them in the public assets bucket.
type LogoUploader struct {
	client     *s3.Client
	bucket     string
	publicBase string
}

func NewLogoUploader(cfg *config.Config) *LogoUploader {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	// non-empty endpoint means an S3-compatible store (MinIO, R2)
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &LogoUploader{
		client:     s3.New(opts),
		bucket:     cfg.S3Bucket,
		publicBase: strings.TrimRight(cfg.S3PublicBaseURL, "/"),
	}
}

// Upload reads at most MaxLogoBytes from r, re-encodes the image as
// webp capped at 512px on the long edge and returns the public URL.
func (u *LogoUploader) Upload(ctx context.Context, r io.Reader, declaredSize int64) (string, error) {
	if declaredSize > MaxLogoBytes {
		return "", httperr.ErrBusiness("logo_too_large")
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxLogoBytes+1))
	if err != nil {
		return "", err
	}
	if len(data) > MaxLogoBytes {
		return "", httperr.ErrBusiness("logo_too_large")
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		// webp uploads are fine too, the std decoders just don't know it
		if src, err = webp.Decode(bytes.NewReader(data)); err != nil {
			return "", httperr.ErrBusiness("invalid_image")
		}
	}

	src = downscale(src, maxLogoEdge)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: 85}); err != nil {
		return "", err
	}

	key := fmt.Sprintf("logos/%s.webp", uuid.NewString())

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", err
	}

	return u.publicBase + "/" + key, nil
}

func downscale(src image.Image, maxEdge int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxEdge && h <= maxEdge {
		return src
	}

	if w >= h {
		h = h * maxEdge / w
		w = maxEdge
	} else {
		w = w * maxEdge / h
		h = maxEdge
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
