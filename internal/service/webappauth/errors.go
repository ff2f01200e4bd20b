package webappauth

import "errors"

var (
	// ErrMissingInitData возвращается при пустом initData
	ErrMissingInitData = errors.New("service.webappauth: missing initData")

	// ErrMalformedInitData возвращается, когда initData не разбирается как query string
	ErrMalformedInitData = errors.New("service.webappauth: malformed initData")

	// ErrMissingHash возвращается, когда в initData нет поля hash
	ErrMissingHash = errors.New("service.webappauth: missing hash")

	// ErrBadSignature возвращается при несовпадении подписи
	ErrBadSignature = errors.New("service.webappauth: bad signature")

	// ErrMissingUser возвращается, когда в initData нет поля user
	ErrMissingUser = errors.New("service.webappauth: missing user")

	// ErrBadUserJSON возвращается, когда поле user не является корректным JSON объектом с id
	ErrBadUserJSON = errors.New("service.webappauth: bad user json")
)
