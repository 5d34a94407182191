package utils

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

var s3Client *s3.Client

func InitS3() {
	region := os.Getenv("S3_REGION")
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
	if err != nil {
		log.Fatalf("Unable to load AWS config for S3: %v", err)
	}
	s3Client = s3.NewFromConfig(cfg)
}

// UploadProfilePicture takes a "data:<mime>;base64,<data>" payload, stores it
// under avatars/ and returns the public URL.
func UploadProfilePicture(dataURL, userID string) (string, error) {
	meta, data, ok := strings.Cut(dataURL, ",")
	if !ok {
		return "", fmt.Errorf("invalid base64 image")
	}

	contentType := "image/jpeg"
	if _, rest, ok := strings.Cut(meta, ":"); ok {
		contentType, _, _ = strings.Cut(rest, ";")
	}
	ext := ".jpg"
	if _, subtype, ok := strings.Cut(contentType, "/"); ok && subtype != "jpeg" && subtype != "jpg" {
		ext = "." + subtype
	}

	imageData, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	key := fmt.Sprintf("avatars/%s-%d%s", userID, time.Now().UnixNano(), ext)

	_, err = s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(os.Getenv("S3_BUCKET")),
		Key:         aws.String(key),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return fmt.Sprintf("%s/%s", os.Getenv("CDN_URL"), key), nil
}
