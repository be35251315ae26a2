package utils

import "github.com/google/uuid"

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(raw string) (uuid.UUID, error) {
	return uuid.Parse(raw)
}
