package main

import (
	"context"
	"fmt"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model/gemini"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/genai"
)

const narratorModel = "gemini-2.5-flash"

func GetAgent(ctx context.Context, apiKey, agentName string) (agent.Agent, error) {
	model, err := gemini.NewModel(ctx, narratorModel, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create model: %w", err)
	}

	customAgent, err := llmagent.New(llmagent.Config{
		Name:        agentName,
		Model:       model,
		Description: "Explain ATS resume reports",
		Instruction: prompt(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	return customAgent, nil
}

// agentNarrator asks the agent for a short plain-text explanation of a report.
// Every call runs in its own agent session, deleted afterwards.
type agentNarrator struct {
	appName  string
	runner   *runner.Runner
	sessions session.Service
}

func newAgentNarrator(ctx context.Context, apiKey, agentName string) (*agentNarrator, error) {
	analyzer, err := GetAgent(ctx, apiKey, agentName)
	if err != nil {
		return nil, err
	}
	inMemoryService := session.InMemoryService()
	r, err := runner.New(runner.Config{
		AppName:        analyzer.Name(),
		Agent:          analyzer,
		SessionService: inMemoryService,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create runner: %w", err)
	}
	return &agentNarrator{appName: analyzer.Name(), runner: r, sessions: inMemoryService}, nil
}

func (n *agentNarrator) Narrate(ctx context.Context, userID, sessionID, msg string) (string, error) {
	agentSession, err := n.sessions.Create(ctx, &session.CreateRequest{
		AppName:   n.appName,
		UserID:    userID,
		SessionID: sessionID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create agent session: %w", err)
	}
	defer func() {
		_ = n.sessions.Delete(ctx, &session.DeleteRequest{
			AppName:   agentSession.Session.AppName(),
			UserID:    agentSession.Session.UserID(),
			SessionID: agentSession.Session.ID(),
		})
	}()

	return retry(2, func() (string, error) {
		stream := n.runner.Run(ctx, agentSession.Session.UserID(), agentSession.Session.ID(), &genai.Content{
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
			if event != nil && event.IsFinalResponse() && event.Content != nil && len(event.Content.Parts) > 0 {
				output = event.Content.Parts[0].Text
			}
		}
		output = CleanAgentText(output)
		if output == "" {
			return "", fmt.Errorf("empty agent response")
		}
		return output, nil
	})
}
