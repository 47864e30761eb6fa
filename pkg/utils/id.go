package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

// Alfabeto sem caracteres que precisem de escape na query string do link de rastreamento
const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const idLength = 12

// GenerateID gera o identificador público de um influenciador
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}
