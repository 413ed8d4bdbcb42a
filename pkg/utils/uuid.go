package utils

import (
	"regexp"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const slugCharacters = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateSlug gera o sufixo do nome de painel de um cliente
func GenerateSlug() (string, error) {
	return gonanoid.Generate(slugCharacters, 8)
}

// GeneratePassword gera uma senha provisória para membros novos
func GeneratePassword() (string, error) {
	return gonanoid.Generate(characters, 16)
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// DashboardSlug gera "acme-gmbh-x1y2z3w4" a partir do nome do cliente
func DashboardSlug(name string) (string, error) {
	suffix, err := GenerateSlug()
	if err != nil {
		return "", err
	}

	base := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if base == "" {
		return suffix, nil
	}
	return base + "-" + suffix, nil
}
