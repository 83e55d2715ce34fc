package utils

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

var ErrFileNotFound = errors.New("file not found")

type FileInfo struct {
	Name     string    `json:"filename"`
	URL      string    `json:"url"`
	Size     int64     `json:"size"`
	Created  time.Time `json:"created"`
	Modified time.Time `json:"modified"`
}

// BlobStore is the storage capability handed to the upload service: store a
// named blob and get back a retrievable URL. Implementations must be safe for
// concurrent use.
type BlobStore interface {
	Upload(ctx context.Context, name string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, name string) error
	Stat(ctx context.Context, name string) (FileInfo, error)
}

// LocalBlobStore keeps uploads on the local disk under a single directory and
// serves them through the static upload route.
type LocalBlobStore struct {
	dir     string
	baseURL string
}

func NewLocalBlobStore(dir, baseURL string) (*LocalBlobStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalBlobStore{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

func (s *LocalBlobStore) Upload(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", err
	}
	return s.baseURL + "/" + name, nil
}

func (s *LocalBlobStore) Delete(ctx context.Context, name string) error {
	err := os.Remove(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return ErrFileNotFound
	}
	return err
}

func (s *LocalBlobStore) Stat(ctx context.Context, name string) (FileInfo, error) {
	st, err := os.Stat(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return FileInfo{}, ErrFileNotFound
	}
	if err != nil {
		return FileInfo{}, err
	}
	return FileInfo{
		Name:     name,
		URL:      s.baseURL + "/" + name,
		Size:     st.Size(),
		Created:  st.ModTime(),
		Modified: st.ModTime(),
	}, nil
}

// Dir exposes the backing directory so the router can mount a file server on it.
func (s *LocalBlobStore) Dir() string { return s.dir }

type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// S3BlobStore stores uploads in an S3-compatible bucket with public-read
// objects.
type S3BlobStore struct {
	client   *s3.S3
	bucket   string
	endpoint string
}

func NewS3BlobStore(cfg S3Config) (*S3BlobStore, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String(cfg.Region),
		Endpoint: aws.String(cfg.Endpoint),
		Credentials: credentials.NewStaticCredentials(
			cfg.AccessKey, cfg.SecretKey, "",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("create s3 session: %w", err)
	}
	return &S3BlobStore{
		client:   s3.New(sess),
		bucket:   cfg.Bucket,
		endpoint: strings.TrimSuffix(cfg.Endpoint, "/"),
	}, nil
}

func (s *S3BlobStore) Upload(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(name),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("unable to upload file to S3: %v", err)
	}
	return s.objectURL(name), nil
}

func (s *S3BlobStore) Delete(ctx context.Context, name string) error {
	if _, err := s.head(ctx, name); err != nil {
		return err
	}
	_, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
	})
	return err
}

func (s *S3BlobStore) Stat(ctx context.Context, name string) (FileInfo, error) {
	head, err := s.head(ctx, name)
	if err != nil {
		return FileInfo{}, err
	}
	info := FileInfo{
		Name: name,
		URL:  s.objectURL(name),
		Size: aws.Int64Value(head.ContentLength),
	}
	if head.LastModified != nil {
		info.Created = *head.LastModified
		info.Modified = *head.LastModified
	}
	return info, nil
}

func (s *S3BlobStore) head(ctx context.Context, name string) (*s3.HeadObjectOutput, error) {
	head, err := s.client.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
	})
	if err != nil {
		var aerr awserr.Error
		if errors.As(err, &aerr) && (aerr.Code() == "NotFound" || aerr.Code() == s3.ErrCodeNoSuchKey) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	return head, nil
}

func (s *S3BlobStore) objectURL(name string) string {
	return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, name)
}
