package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"agrirent/models"
	"agrirent/utils"

	"go.uber.org/zap"
)

// FallbackEquipmentType is returned when no specific machine can be
// identified in the query.
const FallbackEquipmentType = "General Farm Equipment"

const interpretPrompt = `You interpret a farmer's voice query about farm equipment and extract key information.
Identify the type of equipment requested, determine whether there is an intent to rent, and collect any other descriptive keywords.

Rules:
- Phrases like "chahiye" (need) or "kiraaye par" (for rent) signal rental intent.
- If no specific equipment type is mentioned but the query relates to farm work, use "General Farm Equipment".
- Respond with ONLY a JSON object, no prose, in this exact shape:
  {"equipmentType": "...", "rentalIntent": true, "keywords": ["..."]}

Voice query: %q
`

// DefaultQueryInterpreter calls the generative model and parses its
// JSON answer, caching interpretations of identical queries.
type DefaultQueryInterpreter struct {
	Client GenerativeClient
	Cache  *InterpretationCache
}

// NewDefaultQueryInterpreter wires an interpreter. cache may be nil.
func NewDefaultQueryInterpreter(client GenerativeClient, cache *InterpretationCache) *DefaultQueryInterpreter {
	return &DefaultQueryInterpreter{Client: client, Cache: cache}
}

// Interpret runs the single natural-language inference the marketplace
// performs. Any failure is surfaced to the caller, which falls back to
// an unfiltered listing search.
func (s *DefaultQueryInterpreter) Interpret(ctx context.Context, query string) (models.QueryInterpretation, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return models.QueryInterpretation{}, fmt.Errorf("empty query")
	}

	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, query); err == nil && cached != nil {
			return *cached, nil
		}
	}

	raw, err := s.Client.GenerateContent(ctx, fmt.Sprintf(interpretPrompt, query))
	if err != nil {
		return models.QueryInterpretation{}, err
	}

	interpretation, err := parseInterpretation(raw)
	if err != nil {
		utils.GetLogger().Warn("unparseable interpreter response",
			zap.String("query", query), zap.Error(err))
		return models.QueryInterpretation{}, err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, query, &interpretation); err != nil {
			utils.GetLogger().Warn("failed to cache interpretation", zap.Error(err))
		}
	}
	return interpretation, nil
}

// parseInterpretation decodes the model output, tolerating markdown
// code fences around the JSON.
func parseInterpretation(raw string) (models.QueryInterpretation, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var interpretation models.QueryInterpretation
	if err := json.Unmarshal([]byte(cleaned), &interpretation); err != nil {
		return models.QueryInterpretation{}, fmt.Errorf("failed to parse interpretation: %w", err)
	}
	if interpretation.EquipmentType == "" {
		interpretation.EquipmentType = FallbackEquipmentType
	}
	return interpretation, nil
}
