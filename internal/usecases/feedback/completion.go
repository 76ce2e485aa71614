package feedback

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/vfg2006/creator-insights-api/internal/config"
)

// CompletionClient abstrai o provedor de completion usado nas análises.
// Devolve o texto bruto da resposta; a interpretação (JSON ou texto
// livre) fica a cargo de quem chama.
type CompletionClient interface {
	Complete(systemMessage, prompt string, temperature float32, maxTokens int) (string, error)
}

type openAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(appConfig *config.Config) CompletionClient {
	return &openAIClient{
		client: openai.NewClient(appConfig.OpenAI.APIKey),
		model:  appConfig.OpenAI.Model,
	}
}

func (c *openAIClient) Complete(systemMessage, prompt string, temperature float32, maxTokens int) (string, error) {
	resp, err := c.client.CreateChatCompletion(context.Background(), openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemMessage},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("resposta da API de completion sem conteúdo")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
