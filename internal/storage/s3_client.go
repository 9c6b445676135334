package storage

import (
	"context"
	"errors"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// mediaFolder prefixes every object key so listing images share a namespace
// inside the bucket.
const mediaFolder = "cars"

type MediaConfig struct {
	Region     string
	Bucket     string
	AccessKey  string
	SecretKey  string
	Endpoint   string
	PublicBase string
}

// Client is the media delegate: it stores uploaded image bytes and hands back
// a stable public URL. Objects are keyed without a file extension so the
// public ID recovered from a URL maps back onto the key exactly.
type Client struct {
	cfg MediaConfig
	s3  *s3.Client
}

func NewClient(ctx context.Context, cfg MediaConfig) (*Client, error) {
	if cfg.Region == "" || cfg.Bucket == "" {
		return nil, errors.New("media region and bucket are required")
	}
	if cfg.PublicBase == "" {
		return nil, errors.New("media public base url is required")
	}

	var opts []func(*config.LoadOptions) error
	opts = append(opts, config.WithRegion(cfg.Region))

	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Client{cfg: cfg, s3: s3Client}, nil
}

// Upload stores the image bytes under the given public ID and returns the
// public URL to reference it by.
func (c *Client) Upload(ctx context.Context, publicID, contentType string, body io.Reader) (string, error) {
	if publicID == "" {
		return "", errors.New("public id is required")
	}
	key := mediaFolder + "/" + publicID
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.cfg.Bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return c.fileURL(key), nil
}

// Delete removes the object addressed by a public ID previously recovered
// via PublicIDFromURL.
func (c *Client) Delete(ctx context.Context, publicID string) error {
	if publicID == "" {
		return errors.New("public id is required")
	}
	key := mediaFolder + "/" + publicID
	_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.cfg.Bucket),
		Key:    aws.String(key),
	})
	return err
}

func (c *Client) fileURL(key string) string {
	return strings.TrimSuffix(c.cfg.PublicBase, "/") + "/" + key
}

// PublicIDFromURL recovers the delegate identifier from a stored image URL:
// the last path segment with its file extension stripped. This is the
// delegate's URL convention and must match it exactly for deletes to work.
func PublicIDFromURL(rawURL string) string {
	segment := rawURL
	if parsed, err := url.Parse(rawURL); err == nil && parsed.Path != "" {
		segment = parsed.Path
	}
	segment = path.Base(segment)
	return strings.TrimSuffix(segment, path.Ext(segment))
}
