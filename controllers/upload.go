package controllers

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// maxUploadBytes caps vehicle photos at 5 MB.
const maxUploadBytes = 5 << 20

const uploadFolder = "car-rental"

// UploadImage relays one multipart image to Cloudinary and returns the hosted
// URL. The file is held only in memory for the duration of the request.
func UploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			log.Printf("Failed to parse upload form: %v", err)
			http.Error(w, "File too large or malformed form", http.StatusBadRequest)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			log.Printf("No file in upload request: %v", err)
			http.Error(w, "No file provided", http.StatusBadRequest)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			log.Printf("Failed to read upload: %v", err)
			http.Error(w, "Failed to read file", http.StatusInternalServerError)
			return
		}

		contentType := header.Header.Get("Content-Type")
		if contentType == "" || contentType == "application/octet-stream" {
			contentType = http.DetectContentType(data)
		}
		if !strings.HasPrefix(contentType, "image/") {
			log.Printf("Rejected upload with content type %s", contentType)
			http.Error(w, "Invalid file type", http.StatusBadRequest)
			return
		}

		cld, err := cloudinary.NewFromURL(os.Getenv("CLOUDINARY_URL"))
		if err != nil {
			log.Printf("Cloudinary configuration error: %v", err)
			http.Error(w, "Upload failed", http.StatusInternalServerError)
			return
		}

		// Cloudinary accepts a self-contained base64 data URI as the payload.
		dataURI := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))

		result, err := cld.Upload.Upload(r.Context(), dataURI, uploader.UploadParams{
			Folder:       uploadFolder,
			ResourceType: "image",
		})
		if err != nil {
			log.Printf("Cloudinary upload error: %v", err)
			http.Error(w, "Upload failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"url": result.SecureURL})
	}
}
