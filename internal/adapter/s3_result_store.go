package adapter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	m "github.com/mouse-blink/vifmap/internal/model"
)

// S3Config holds the connection settings of an S3-compatible bucket.
type S3Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	Prefix    string
	UseSSL    bool
}

// S3ResultStore keeps artifacts as objects under prefix/id/.
type S3ResultStore struct {
	client     *minio.Client
	bucketName string
	region     string
	prefix     string
	initOnce   sync.Once
	initErr    error
}

// NewS3ResultStore validates cfg and creates the client. No request is made until
// the first operation.
func NewS3ResultStore(cfg S3Config) (*S3ResultStore, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("s3 endpoint is required")
	}

	access := strings.TrimSpace(cfg.AccessKey)
	secret := strings.TrimSpace(cfg.SecretKey)

	if access == "" || secret == "" {
		return nil, fmt.Errorf("s3 access key and secret key are required")
	}

	bucket := strings.TrimSpace(cfg.Bucket)
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}

	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = "us-east-1"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(access, secret, ""),
		Secure: cfg.UseSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("init s3 client: %w", err)
	}

	return &S3ResultStore{
		client:     client,
		bucketName: bucket,
		region:     region,
		prefix:     strings.Trim(strings.TrimSpace(cfg.Prefix), "/"),
	}, nil
}

func (s *S3ResultStore) ensureBucket(ctx context.Context) error {
	s.initOnce.Do(func() {
		exists, err := s.client.BucketExists(ctx, s.bucketName)
		if err != nil {
			s.initErr = err
			return
		}

		if exists {
			return
		}

		s.initErr = s.client.MakeBucket(ctx, s.bucketName, minio.MakeBucketOptions{Region: s.region})
	})

	return s.initErr
}

// Save uploads the artifact files.
func (s *S3ResultStore) Save(ctx context.Context, id string, artifact m.Artifact) error {
	if err := validateID(id); err != nil {
		return err
	}

	files, err := encodeArtifact(artifact)
	if err != nil {
		return err
	}

	if err := s.ensureBucket(ctx); err != nil {
		return fmt.Errorf("ensure bucket: %w", err)
	}

	for _, name := range []string{ImageFile, CodeFile, MappingFile} {
		content := files[name]

		_, err := s.client.PutObject(ctx, s.bucketName, s.objectKey(id, name), bytes.NewReader(content), int64(len(content)),
			minio.PutObjectOptions{ContentType: contentType(name)})
		if err != nil {
			return fmt.Errorf("put %s: %w", name, err)
		}
	}

	return nil
}

// Load downloads the artifact stored under id.
func (s *S3ResultStore) Load(ctx context.Context, id string) (m.Artifact, error) {
	if err := validateID(id); err != nil {
		return m.Artifact{}, err
	}

	if err := s.ensureBucket(ctx); err != nil {
		return m.Artifact{}, fmt.Errorf("ensure bucket: %w", err)
	}

	files := make(map[string][]byte, 3)

	for _, name := range []string{ImageFile, CodeFile, MappingFile} {
		data, err := s.get(ctx, s.objectKey(id, name))
		if err != nil {
			return m.Artifact{}, fmt.Errorf("get %s: %w", name, err)
		}

		files[name] = data
	}

	return decodeArtifact(files)
}

func (s *S3ResultStore) get(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = obj.Close()
	}()

	data, err := io.ReadAll(obj)
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NoSuchBucket" {
			return nil, ErrArtifactNotFound
		}

		return nil, err
	}

	return data, nil
}

// List returns the ids that have a mapping object, sorted.
func (s *S3ResultStore) List(ctx context.Context) ([]string, error) {
	if err := s.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("ensure bucket: %w", err)
	}

	prefix := ""
	if s.prefix != "" {
		prefix = s.prefix + "/"
	}

	ids := make([]string, 0, 16)

	for obj := range s.client.ListObjects(ctx, s.bucketName, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, obj.Err
		}

		rel := strings.TrimPrefix(obj.Key, prefix)
		if id, ok := strings.CutSuffix(rel, "/"+MappingFile); ok && !strings.Contains(id, "/") {
			ids = append(ids, id)
		}
	}

	sort.Strings(ids)

	return ids, nil
}

func (s *S3ResultStore) objectKey(id, name string) string {
	if s.prefix == "" {
		return id + "/" + name
	}

	return s.prefix + "/" + id + "/" + name
}

func contentType(name string) string {
	switch name {
	case ImageFile:
		return "image/png"
	case MappingFile:
		return "application/yaml"
	default:
		return "text/plain; charset=utf-8"
	}
}
