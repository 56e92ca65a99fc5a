package equipment

import "errors"

var (
	ErrEquipmentExists = errors.New("equipment tag already exists")
	ErrEmptyTag        = errors.New("equipment tag must not be empty")
)
