package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador curto usado como chave de idempotência
// em eventos de billing
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 12)
}
