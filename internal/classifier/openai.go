package classifier

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// DefaultOpenAIModel is used when no model is configured.
const DefaultOpenAIModel = "gpt-5-mini"

var errNoChoices = errors.New("completion returned no choices")

// OpenAIGenerator sends requests to the OpenAI chat completions API with a
// strict json_schema response format.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

// NewOpenAIGenerator returns a generator authenticated with apiKey.
func NewOpenAIGenerator(apiKey, model string) *OpenAIGenerator {
	return NewOpenAIGeneratorWithConfig(openai.DefaultConfig(apiKey), model)
}

// NewOpenAIGeneratorWithConfig allows overriding the base URL and HTTP client,
// e.g. for OpenAI-compatible gateways or tests.
func NewOpenAIGeneratorWithConfig(cfg openai.ClientConfig, model string) *OpenAIGenerator {
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &OpenAIGenerator{client: openai.NewClientWithConfig(cfg), model: model}
}

// Generate implements Generator.
func (g *OpenAIGenerator) Generate(ctx context.Context, req Request) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.User},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   req.Schema.Name,
				Schema: openAISchema(req.Schema),
				Strict: true,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: %w", errNoChoices)
	}
	return resp.Choices[0].Message.Content, nil
}

func openAISchema(s Schema) *jsonschema.Definition {
	props := make(map[string]jsonschema.Definition, len(s.Properties))
	for _, p := range s.Properties {
		switch p.Kind {
		case KindBoolean:
			props[p.Name] = jsonschema.Definition{Type: jsonschema.Boolean}
		case KindStringArray:
			props[p.Name] = jsonschema.Definition{
				Type:  jsonschema.Array,
				Items: &jsonschema.Definition{Type: jsonschema.String, Enum: p.Enum},
			}
		default:
			props[p.Name] = jsonschema.Definition{Type: jsonschema.String, Enum: p.Enum}
		}
	}
	return &jsonschema.Definition{
		Type:                 jsonschema.Object,
		Properties:           props,
		Required:             s.Required(),
		AdditionalProperties: false,
	}
}
