package admins

import "errors"

var (
	// ErrAdminNotFound возвращается, когда администратор не найден
	ErrAdminNotFound = errors.New("admin not found")

	// ErrInvalidCredentials возвращается при неверной паре email/пароль
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountDisabled возвращается при входе в отключённую учётную запись
	ErrAccountDisabled = errors.New("account is disabled")

	// ErrEmailExists возвращается при попытке создать администратора с занятым email
	ErrEmailExists = errors.New("email already exists")

	// ErrCannotDeleteSelf возвращается при попытке удалить собственную учётную запись
	ErrCannotDeleteSelf = errors.New("cannot delete own account")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
