package module

import "errors"

var (
	ErrNoDefaultExport     = errors.New("module has no default export")
	ErrNotObjectOrCallable = errors.New("default export must be an object or a factory function")
	ErrUnsupportedFactory  = errors.New("unsupported factory signature")
	ErrUnsupportedModule   = errors.New("unsupported module extension")
	ErrModuleNotFound      = errors.New("module not found")
	ErrResolvedNil         = errors.New("resolved to nil")
	ErrResolvedFalsy       = errors.New("resolved to a falsy value")
	ErrResolvedNonObject   = errors.New("resolved to a non-object value")
	ErrFactoryFailed       = errors.New("factory failed")
	ErrNoResult            = errors.New("factory finished without a result")
)
