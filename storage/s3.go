package storage

import (
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/haldialf/tugas-sabinaa/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

type S3Storage struct {
	bucket   string
	s3Client *s3.S3
}

func NewS3Storage(bucket, region, endpoint, auth string) StorageAPI {
	awsConfig := aws.Config{
		Region: aws.String(region),
	}
	if endpoint != "" {
		awsConfig.Endpoint = aws.String(endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}
	if key, secret, found := strings.Cut(auth, ":"); found {
		awsConfig.Credentials = credentials.NewStaticCredentials(key, secret, "")
	}
	return &S3Storage{
		bucket:   bucket,
		s3Client: s3.New(session.Must(session.NewSession(&awsConfig))),
	}
}

// GetFullPath returns a local temp path in case of S3
func (s *S3Storage) GetFullPath(path string) string {
	return config.TMP_DIR + "/" + strings.ReplaceAll(path, "/", "_")
}

func (s *S3Storage) EnsureDirExists(dir string) error {
	return nil
}

func (s *S3Storage) GetSize(path string) int64 {
	resp, err := s.s3Client.HeadObject(&s3.HeadObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(path),
	})
	if err != nil || resp.ContentLength == nil {
		return -1
	}
	return *resp.ContentLength
}

func (s *S3Storage) Save(path string, reader io.Reader) (int64, error) {
	uploader := s3manager.NewUploaderWithClient(s.s3Client)
	_, err := uploader.Upload(&s3manager.UploadInput{
		Bucket: &s.bucket,
		Key:    aws.String(path),
		Body:   reader,
	})
	if err != nil {
		return 0, err
	}
	return s.GetSize(path), nil
}

func (s *S3Storage) Load(path string, writer io.Writer) (int64, error) {
	resp, err := s.s3Client.GetObject(&s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(path),
	})
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return io.Copy(writer, resp.Body)
}

func (s *S3Storage) Serve(path string, request *http.Request, writer http.ResponseWriter) {
	if _, err := s.Load(path, writer); err != nil {
		writer.WriteHeader(http.StatusNotFound)
	}
}

func (s *S3Storage) Delete(path string) error {
	_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(path),
	})
	if err == nil {
		// Also drop any local temp copy
		_ = os.Remove(s.GetFullPath(path))
	}
	return err
}
