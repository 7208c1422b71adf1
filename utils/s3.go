package utils

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"mime"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

var s3Client *s3.Client

func InitS3() {
	region := os.Getenv("S3_REGION")
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		log.Fatalf("Unable to load AWS config for S3: %v", err)
	}

	s3Client = s3.NewFromConfig(cfg)
}

// UploadFoodPhoto stores a base64 data-URI image ("data:<mime>;base64,<data>")
// under food-photos/ and returns its public URL. The client keeps that URL as
// the image reference on the matching history entry.
func UploadFoodPhoto(base64Data string) (string, error) {
	parts := strings.Split(base64Data, ",")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid base64 image")
	}
	meta := strings.SplitN(parts[0], ":", 2)
	if len(meta) != 2 {
		return "", fmt.Errorf("invalid base64 image")
	}
	contentType := strings.SplitN(meta[1], ";", 2)[0]

	imageData, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %v", err)
	}

	key := fmt.Sprintf("food-photos/%d%s", time.Now().UnixNano(), extensionFor(contentType))

	_, err = s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(os.Getenv("S3_BUCKET")),
		Key:         aws.String(key),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %v", err)
	}

	return fmt.Sprintf("%s/%s", os.Getenv("CLOUDFRONT_URL"), key), nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	}
	if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
		return exts[0]
	}
	if parts := strings.SplitN(contentType, "/", 2); len(parts) == 2 {
		return "." + parts[1]
	}
	return ""
}

// DecodeDataURI splits a base64 data URI into raw bytes and content type,
// for callers that need the image inline (the vision prompt) rather than
// uploaded.
func DecodeDataURI(base64Data string) ([]byte, string, error) {
	parts := strings.Split(base64Data, ",")
	if len(parts) != 2 {
		return nil, "", fmt.Errorf("invalid base64 image")
	}
	meta := strings.SplitN(parts[0], ":", 2)
	if len(meta) != 2 {
		return nil, "", fmt.Errorf("invalid base64 image")
	}
	contentType := strings.SplitN(meta[1], ";", 2)[0]
	data, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %v", err)
	}
	return data, contentType, nil
}
