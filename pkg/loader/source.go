package loader

import (
	"Food-Wastage-Management/internal/utils/storage"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Source opens the raw table files by base name.
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	String() string
}

type dirSource struct {
	dir string
}

func NewDirSource(dir string) Source {
	return &dirSource{dir: dir}
}

func (s *dirSource) Open(_ context.Context, name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.dir, name))
}

func (s *dirSource) String() string {
	return s.dir
}

type s3Source struct {
	s3     storage.AwsS3
	bucket string
	prefix string
}

func NewS3Source(s3 storage.AwsS3, bucket, prefix string) Source {
	return &s3Source{s3: s3, bucket: bucket, prefix: strings.Trim(prefix, "/")}
}

func (s *s3Source) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return s.s3.GetFile(ctx, path.Join(s.prefix, name))
}

func (s *s3Source) String() string {
	return fmt.Sprintf("s3://%s/%s", s.bucket, s.prefix)
}

// ParseS3Location splits "s3://bucket/prefix". ok is false for anything else.
func ParseS3Location(location string) (bucket, prefix string, ok bool) {
	rest, found := strings.CutPrefix(location, "s3://")
	if !found || rest == "" {
		return "", "", false
	}
	bucket, prefix, _ = strings.Cut(rest, "/")
	if bucket == "" {
		return "", "", false
	}
	return bucket, prefix, true
}

// OpenSource resolves a directory path or an s3:// location.
func OpenSource(location string) (Source, error) {
	bucket, prefix, ok := ParseS3Location(location)
	if !ok {
		info, err := os.Stat(location)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", location)
		}
		return NewDirSource(location), nil
	}

	client, err := storage.NewAwsS3WithBucket(bucket)
	if err != nil {
		return nil, err
	}
	return NewS3Source(client, bucket, prefix), nil
}
