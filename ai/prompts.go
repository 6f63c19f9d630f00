package ai

import (
	"fmt"
	"strings"
)

// PromptManager - Simple built-in prompt loader
type PromptManager struct{}

// NewPromptManager creates a prompt manager
func NewPromptManager() *PromptManager {
	return &PromptManager{}
}

// LoadPrompt loads a prompt template by name
func (pm *PromptManager) LoadPrompt(name string) (string, error) {
	template, ok := promptTemplates[name]
	if !ok {
		return "", fmt.Errorf("prompt template not found: %s", name)
	}
	return template, nil
}

// RenderPrompt replaces {PLACEHOLDER} with values
func (pm *PromptManager) RenderPrompt(name string, replacements map[string]string) (string, error) {
	template, err := pm.LoadPrompt(name)
	if err != nil {
		return "", err
	}

	result := template
	for placeholder, value := range replacements {
		placeholderKey := "{" + placeholder + "}"
		result = strings.ReplaceAll(result, placeholderKey, value)
	}

	return result, nil
}
