// file: internals/helpers/oss/oss_client.go
package oss

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

/* =======================================================================
   OSS client
   Engine hanya menyimpan object key; resolve ke URL hanya saat
   menyusun correction-detail view.
======================================================================= */

type OSSService struct {
	Client     *oss.Client
	Bucket     *oss.Bucket
	Endpoint   string
	BucketName string
	// Umur signed URL dalam detik (default 900).
	SignTTLSec int64
}

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

func NewOSSServiceFromEnv() (*OSSService, error) {
	endpoint := getEnv("ALI_OSS_ENDPOINT")
	ak := getEnv("ALI_OSS_ACCESS_KEY")
	sk := getEnv("ALI_OSS_SECRET_KEY")
	sts := getEnv("ALI_OSS_SECURITY_TOKEN")
	bucketName := getEnv("ALI_OSS_BUCKET")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}

	var (
		client *oss.Client
		err    error
	)
	if sts != "" {
		client, err = oss.New(endpoint, ak, sk, oss.SecurityToken(sts))
	} else {
		client, err = oss.New(endpoint, ak, sk)
	}
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}

	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	ttl := int64(900)
	if v := getEnv("ALI_OSS_SIGN_TTL_SEC"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			ttl = n
		}
	}

	return &OSSService{
		Client:     client,
		Bucket:     bkt,
		Endpoint:   endpoint,
		BucketName: bucketName,
		SignTTLSec: ttl,
	}, nil
}

// SignedURL: URL GET berbatas waktu untuk satu object key.
func (s *OSSService) SignedURL(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("empty object key")
	}
	return s.Bucket.SignURL(key, oss.HTTPGet, s.SignTTLSec)
}

/* ===============================
   Lazy default instance
   Init gagal tidak fatal: attachment view jatuh ke key mentah.
=================================*/

var (
	defaultOnce sync.Once
	defaultSvc  *OSSService
)

func DefaultOSS() *OSSService {
	defaultOnce.Do(func() {
		svc, err := NewOSSServiceFromEnv()
		if err != nil {
			log.Printf("[OSS] disabled: %v", err)
			return
		}
		defaultSvc = svc
	})
	return defaultSvc
}
