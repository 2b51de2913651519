package services

import (
	"karttem-admin/internal/models"
	"karttem-admin/pkg/inmobiliaria"
	"karttem-admin/pkg/logger"
)

// prepareImages compresses the uploads and settles which one is main.
// The first flagged upload wins; with none flagged the first upload becomes main
// only when firstIsMain is set.
func prepareImages(compressor ImageCompressor, uploads []models.ImageUpload, firstIsMain bool) []inmobiliaria.Upload {
	if len(uploads) == 0 {
		return nil
	}

	prepared := make([]inmobiliaria.Upload, 0, len(uploads))
	mainIndex := -1
	for i, img := range uploads {
		upload := inmobiliaria.Upload{
			Filename:    img.Filename,
			ContentType: img.ContentType,
			Data:        img.Data,
		}
		if compressor != nil {
			res, err := compressor.Compress(img.Filename, img.ContentType, img.Data)
			if err != nil {
				logger.GlobalLogger.Warnf("keeping original %s: %v", img.Filename, err)
			}
			if res != nil {
				upload.Filename = res.Filename
				upload.ContentType = res.ContentType
				upload.Data = res.Data
			}
		}
		if img.IsMain && mainIndex < 0 {
			mainIndex = i
		}
		prepared = append(prepared, upload)
	}

	if mainIndex < 0 && firstIsMain {
		mainIndex = 0
	}
	if mainIndex >= 0 {
		prepared[mainIndex].IsMain = true
	}
	return prepared
}

func hasFlaggedUpload(uploads []models.ImageUpload) bool {
	for _, img := range uploads {
		if img.IsMain {
			return true
		}
	}
	return false
}

func hasMainImage(property *inmobiliaria.Property) bool {
	for _, img := range property.Images {
		if bool(img.IsMain) {
			return true
		}
	}
	return false
}
