package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// idSize comporta anos de registros diários e relatórios semanais sem colisão prática
const idSize = 12

// GenerateID gera IDs curtos para registros persistidos e sessões
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idSize)
}
