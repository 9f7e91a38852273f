package cloud

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	objects map[string][]byte
	putErr  error
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: make(map[string][]byte)}
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = data
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func TestStore_UploadDownload(t *testing.T) {
	fake := newFakeS3()
	store := newStore(fake, Config{Bucket: "garden", Prefix: "/backups/"})

	key, err := store.Upload(context.Background(), "crop_backup_2024-06-03.json", []byte(`{"entries":[]}`))
	require.NoError(t, err)
	assert.Equal(t, "backups/crop_backup_2024-06-03.json", key)
	assert.Contains(t, fake.objects, "garden/backups/crop_backup_2024-06-03.json")

	data, err := store.Download(context.Background(), "crop_backup_2024-06-03.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"entries":[]}`, string(data))
}

func TestStore_DownloadMissing(t *testing.T) {
	store := newStore(newFakeS3(), Config{Bucket: "garden"})

	_, err := store.Download(context.Background(), "nope.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestStore_UploadError(t *testing.T) {
	fake := newFakeS3()
	fake.putErr = errors.New("access denied")
	store := newStore(fake, Config{Bucket: "garden"})

	_, err := store.Upload(context.Background(), "x.json", []byte("{}"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

func TestStore_KeyWithoutPrefix(t *testing.T) {
	store := newStore(newFakeS3(), Config{Bucket: "garden"})
	assert.Equal(t, "a.json", store.Key("a.json"))
	assert.Equal(t, "garden", store.Bucket())
}

func TestNew_NotConfigured(t *testing.T) {
	_, err := New(context.Background(), Config{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNew_UsesLoadedConfig(t *testing.T) {
	orig := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = orig })

	var called bool
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
		called = true
		assert.Len(t, optFns, 2)
		return aws.Config{Region: "eu-central-1"}, nil
	}

	store, err := New(context.Background(), Config{
		Bucket:    "garden",
		Region:    "eu-central-1",
		Endpoint:  "http://localhost:9000",
		AccessKey: "minio",
		SecretKey: "minio123",
	})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "garden", store.Bucket())
}

func TestNew_LoadError(t *testing.T) {
	orig := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = orig })

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("boom")
	}

	_, err := New(context.Background(), Config{Bucket: "garden"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}
