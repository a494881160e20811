package emailsink

import "errors"

var (
	// ErrCreateDir возвращается, когда не удалось создать каталог для писем
	ErrCreateDir = errors.New("emailsink: failed to create output dir")

	// ErrWriteFile возвращается при ошибке записи файла письма
	ErrWriteFile = errors.New("emailsink: failed to write email file")
)
