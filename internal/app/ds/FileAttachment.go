package ds

import "strings"

// Типы вложений. Определяются по MIME при загрузке.
const (
	FileTypePDF     = "pdf"
	FileTypeImage   = "image"
	FileTypeAudio   = "audio"
	FileTypeUnknown = "unknown"
)

type FileAttachment struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(300);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	FilePath    string `gorm:"column:file_path;type:varchar(500);not null" json:"file_path"`
	FileType    string `gorm:"column:file_type;type:varchar(20);not null" json:"file_type"`
	DiseaseID   uint   `gorm:"not null;index" json:"disease_id"`

	Disease Disease `gorm:"foreignKey:DiseaseID;constraint:OnDelete:CASCADE" json:"-"`
}

// FileTypeFromMIME определяет тип вложения по Content-Type загруженного файла.
func FileTypeFromMIME(mime string) string {
	switch {
	case mime == "application/pdf":
		return FileTypePDF
	case strings.HasPrefix(mime, "image/"):
		return FileTypeImage
	case strings.HasPrefix(mime, "audio/"):
		return FileTypeAudio
	default:
		return FileTypeUnknown
	}
}

// ValidFileType проверяет присланный клиентом тип вложения.
func ValidFileType(t string) bool {
	switch t {
	case FileTypePDF, FileTypeImage, FileTypeAudio, FileTypeUnknown:
		return true
	}
	return false
}
