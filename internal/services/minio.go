package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"

	"pizzamia_back_end/internal/database"
)

// Durata di validità delle URL firmate per le immagini del menu.
const SignedURLDuration = 15 * time.Minute

// UploadMenuImage carica l'immagine di una voce del menu sotto la chiave data.
func UploadMenuImage(ctx context.Context, objectKey string, file *multipart.FileHeader) error {
	if database.MinIO == nil {
		return fmt.Errorf("MinIO non inizializzato")
	}

	f, err := file.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = database.MinIO.PutObject(ctx, database.Bucket(), objectKey, f, file.Size,
		minio.PutObjectOptions{ContentType: file.Header.Get("Content-Type")})
	return err
}

// GenerateSignedURL genera una URL firmata a scadenza per un oggetto immagine.
func GenerateSignedURL(ctx context.Context, objectKey string) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO non inizializzato")
	}

	presigned, err := database.MinIO.PresignedGetObject(
		ctx,
		database.Bucket(),
		objectKey,
		SignedURLDuration,
		url.Values{},
	)
	if err != nil {
		return "", err
	}
	return presigned.String(), nil
}
