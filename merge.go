package main

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/resumelyze/worker/internal/analyzer"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/session"
	"google.golang.org/genai"
)

// Keyword lists grow when local and AI findings are unioned; cap them like
// the single-mode results.
const hybridKeywordCap = 20

var jsonObjectPattern = regexp.MustCompile(`\{[\s\S]*\}`)

// runAgentAnalysis sends one resume through the Gemini agent and parses the
// structured response. The agent stream is retried once: transient model
// failures are common enough to warrant it.
func runAgentAnalysis(ctx context.Context, workerConfig *WorkerConfig, agentSession *session.CreateResponse, currentSession Session, resumeText string) (*aiAnalysis, error) {
	msg := fmt.Sprintf(
		"Job Title:\n%s\n\nJob Description:\n%s\n\nResume:\n%s",
		currentSession.JobTitle,
		currentSession.JobDescription,
		resumeText,
	)

	finalOutput, err := retry(2, func() (string, error) {
		stream := workerConfig.AgentRunner.Run(ctx, agentSession.Session.UserID(), agentSession.Session.ID(), &genai.Content{
			Role: "user",
			Parts: []*genai.Part{
				{Text: msg},
			},
		}, agent.RunConfig{})

		var output string
		for event, err := range stream {
			if err != nil {
				return "", err
			}
			if event != nil && event.IsFinalResponse() && len(event.Content.Parts) > 0 {
				output = event.Content.Parts[0].Text
			}
		}

		if output == "" {
			return "", fmt.Errorf("empty agent response")
		}
		return output, nil
	})
	if err != nil {
		return nil, fmt.Errorf("agent stream error: %w", err)
	}

	return parseAIAnalysis(finalOutput)
}

// parseAIAnalysis extracts and decodes the JSON object from a raw model
// response, tolerating code fences and surrounding prose.
func parseAIAnalysis(raw string) (*aiAnalysis, error) {
	cleaned := cleanJSON(raw)
	object := jsonObjectPattern.FindString(cleaned)
	if object == "" {
		return nil, fmt.Errorf("no JSON object in agent response")
	}

	var parsed aiAnalysis
	if err := json.Unmarshal([]byte(object), &parsed); err != nil {
		return nil, fmt.Errorf("json unmarshal error: %w", err)
	}
	parsed.AnalysisMode = modeAI
	if parsed.SectionScores == nil {
		parsed.SectionScores = map[string]analyzer.SectionScore{}
	}
	return &parsed, nil
}

// mergeHybrid combines a local and an AI result: numeric scores are
// averaged, keyword lists unioned, and AI suggestion text preferred where
// present.
func mergeHybrid(local analyzer.Result, ai *aiAnalysis) aiAnalysis {
	merged := *ai
	merged.JDMatch = (local.JDMatch + ai.JDMatch) / 2
	merged.ATSScore = (local.ATSScore + ai.ATSScore) / 2
	merged.ReadabilityScore = (local.ReadabilityScore + ai.ReadabilityScore) / 2
	merged.MissingKeywords = mergeKeywordLists(local.MissingKeywords, ai.MissingKeywords)
	merged.FoundKeywords = mergeKeywordLists(local.FoundKeywords, ai.FoundKeywords)

	sections := make(map[string]analyzer.SectionScore, len(local.SectionScores))
	for name, localScore := range local.SectionScores {
		sections[name] = mergeSectionScore(localScore, ai.SectionScores[name])
	}
	for name, aiScore := range ai.SectionScores {
		if _, ok := local.SectionScores[name]; !ok {
			sections[name] = mergeSectionScore(analyzer.SectionScore{}, aiScore)
		}
	}
	merged.SectionScores = sections
	merged.AnalysisMode = modeHybrid
	return merged
}

func mergeSectionScore(local, ai analyzer.SectionScore) analyzer.SectionScore {
	suggestion := ai.Suggestion
	if suggestion == "" {
		suggestion = local.Suggestion
	}
	return analyzer.SectionScore{
		Score:      (local.Score + ai.Score) / 2,
		Suggestion: suggestion,
	}
}

// mergeKeywordLists unions two keyword lists, keeping first-seen order.
func mergeKeywordLists(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var out []string
	for _, list := range [][]string{a, b} {
		for _, kw := range list {
			if !seen[kw] {
				seen[kw] = true
				out = append(out, kw)
			}
		}
	}
	if len(out) > hybridKeywordCap {
		out = out[:hybridKeywordCap]
	}
	return out
}
