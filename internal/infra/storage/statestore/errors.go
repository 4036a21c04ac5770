package statestore

import "errors"

var (
	// ErrStateNotFound возвращается, когда под ключом нет сохраненного состояния
	ErrStateNotFound = errors.New("statestore: state not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("statestore: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("statestore: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("statestore: failed to scan row")

	// ErrEncodeState возвращается при ошибке сериализации состояния
	ErrEncodeState = errors.New("statestore: failed to encode state")

	// ErrDecodeState возвращается, когда сохраненный блоб не декодируется
	// в валидное состояние
	ErrDecodeState = errors.New("statestore: failed to decode state")
)
