package uploads

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

var (
	// ErrFileTooLarge возвращается, когда файл превышает лимит размера
	ErrFileTooLarge = errors.New("uploads: file is too large")

	// ErrUnsupportedType возвращается для недопустимого типа файла
	ErrUnsupportedType = errors.New("uploads: unsupported file type")
)

// разрешённые типы изображений для подтверждения оплаты
// и расширение, под которым файл сохраняется
var allowedMIMETypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// Saver сохраняет загруженные файлы на диск под случайными именами
type Saver struct {
	dir          string
	publicPrefix string
	maxSizeBytes int64
}

// NewSaver создает Saver; директория создается при первом использовании
func NewSaver(dir, publicPrefix string, maxSizeBytes int64) *Saver {
	return &Saver{
		dir:          dir,
		publicPrefix: publicPrefix,
		maxSizeBytes: maxSizeBytes,
	}
}

// Save сохраняет файл и возвращает его публичный путь (например,
// "/uploads/proofs/3f2a....jpg")
func (s *Saver) Save(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > s.maxSizeBytes {
		return "", fmt.Errorf("%w: %d bytes (max %d)", ErrFileTooLarge, fileHeader.Size, s.maxSizeBytes)
	}

	contentType := fileHeader.Header.Get("Content-Type")
	ext, ok := allowedMIMETypes[contentType]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, contentType)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("uploads: create dir: %w", err)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("uploads: open uploaded file: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + ext
	fullPath := filepath.Join(s.dir, name)

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("uploads: create file: %w", err)
	}
	defer dst.Close()

	// Size в заголовке приходит от клиента, поэтому лимит
	// проверяется ещё раз по фактически записанным байтам
	written, err := io.Copy(dst, io.LimitReader(src, s.maxSizeBytes+1))
	if err != nil {
		_ = os.Remove(fullPath)
		return "", fmt.Errorf("uploads: write file: %w", err)
	}
	if written > s.maxSizeBytes {
		_ = os.Remove(fullPath)
		return "", fmt.Errorf("%w: stream exceeds %d bytes", ErrFileTooLarge, s.maxSizeBytes)
	}

	return path.Join(s.publicPrefix, name), nil
}

// Remove удаляет ранее сохранённый файл по его публичному пути.
// Вызывается, когда бронирование после загрузки файла не было создано
func (s *Saver) Remove(publicPath string) error {
	name := path.Base(publicPath)
	if name == "." || name == "/" || name == "" {
		return fmt.Errorf("uploads: invalid path %q", publicPath)
	}
	return os.Remove(filepath.Join(s.dir, name))
}

// Dir возвращает директорию хранения (для статической раздачи)
func (s *Saver) Dir() string {
	return s.dir
}
