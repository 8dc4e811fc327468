package repository

import (
	"encoding/json"

	"gorm.io/datatypes"
)

func toJSON(m map[string]any) datatypes.JSON {
	if len(m) == 0 {
		return nil
	}

	b, err := json.Marshal(m)
	if err != nil {
		return nil
	}

	return datatypes.JSON(b)
}

func fromJSON(j datatypes.JSON) map[string]any {
	if len(j) == 0 {
		return nil
	}

	var m map[string]any
	if err := json.Unmarshal(j, &m); err != nil {
		return nil
	}

	return m
}
