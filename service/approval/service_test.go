package approval

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChangJu-Ahn/conceptgate/model/review"
	"github.com/ChangJu-Ahn/conceptgate/service/event"
	"github.com/ChangJu-Ahn/conceptgate/service/messaging/memory"
)

func TestService_Initiate(t *testing.T) {
	type testCase struct {
		name             string
		payload          interface{}
		expectedAnalysis string
	}

	cases := []testCase{
		{
			name:             "text payload",
			payload:          "Strong market potential in the 25-40 demographic.",
			expectedAnalysis: "Strong market potential in the 25-40 demographic.",
		},
		{
			name:             "nil payload tolerated via placeholder",
			payload:          nil,
			expectedAnalysis: "No analysis provided",
		},
		{
			name:             "blank payload tolerated via placeholder",
			payload:          "   \n",
			expectedAnalysis: "No analysis provided",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := New()
			ctx := context.Background()

			request, err := svc.Initiate(ctx, tc.payload)
			require.NoError(t, err)
			assert.NotEmpty(t, request.ID)
			assert.Equal(t, review.DefaultQuestion, request.Question)
			assert.Equal(t, tc.expectedAnalysis, request.AnalysisContent)
			assert.Contains(t, request.Context, tc.expectedAnalysis)
			assert.Contains(t, request.Context, "KEY DECISION FACTORS")

			// the request is emitted on the outbound channel
			msg, err := svc.RequestQueue().Consume(ctx)
			require.NoError(t, err)
			assert.Equal(t, request.ID, msg.T().ID)
			require.NoError(t, msg.Ack())

			// and tracked as pending until a decision pairs with it
			pending, err := svc.ListPending(ctx)
			require.NoError(t, err)
			assert.Len(t, pending, 1)
		})
	}
}

func TestService_InitiateTruncatesContextOnly(t *testing.T) {
	svc := New(WithContextLimit(100))
	ctx := context.Background()

	long := strings.Repeat("fashion analysis ", 50)
	request, err := svc.Initiate(ctx, long)
	require.NoError(t, err)

	// the raw analysis survives untruncated, only the reviewer context is capped
	assert.Equal(t, long, request.AnalysisContent)
	assert.Contains(t, request.Context, long[:100]+"...")
	assert.NotContains(t, request.Context, long)
}

func TestService_Finalize(t *testing.T) {
	type testCase struct {
		name             string
		reply            interface{}
		expectedApproved bool
		expectedFeedback string
	}

	cases := []testCase{
		{name: "yes approves", reply: "yes", expectedApproved: true, expectedFeedback: "yes"},
		{name: "y approves", reply: "y", expectedApproved: true, expectedFeedback: "y"},
		{name: "approve approves", reply: "approve", expectedApproved: true, expectedFeedback: "approve"},
		{name: "approved with case and whitespace", reply: "  APPROVED \n", expectedApproved: true, expectedFeedback: "  APPROVED \n"},
		{name: "no rejects", reply: "no", expectedFeedback: "no"},
		{name: "deny rejects", reply: "deny", expectedFeedback: "deny"},
		{name: "unrecognized reply rejects", reply: "ship it maybe", expectedFeedback: "ship it maybe"},
		{name: "nil reply rejects", reply: nil, expectedFeedback: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := New()
			ctx := context.Background()

			request, err := svc.Initiate(ctx, "analysis body")
			require.NoError(t, err)

			decision, err := svc.Finalize(ctx, &review.Response{Data: tc.reply, OriginalRequest: request})
			require.NoError(t, err)
			assert.Equal(t, request.ID, decision.ID)
			assert.Equal(t, tc.expectedApproved, decision.Approved)
			// the decision carries the raw reply as feedback
			assert.Equal(t, tc.expectedFeedback, decision.Feedback)
			// the analysis text reaches the decision bit-identical
			assert.Equal(t, request.AnalysisContent, decision.AnalysisContent)

			// classifier predicates agree with the decision
			assert.Equal(t, tc.expectedApproved, review.IsApproved(decision))

			// pairing removes the pending entry
			pending, err := svc.ListPending(ctx)
			require.NoError(t, err)
			assert.Empty(t, pending)
		})
	}
}

func TestService_FinalizeWithoutRequest(t *testing.T) {
	svc := New()
	ctx := context.Background()

	decision, err := svc.Finalize(ctx, &review.Response{Data: "yes"})
	require.NoError(t, err)
	assert.True(t, decision.Approved)
	assert.NotEmpty(t, decision.ID)
	assert.Empty(t, decision.AnalysisContent)
}

func TestService_EventsCarryCorrelation(t *testing.T) {
	queue := memory.NewQueue[event.Event[interface{}]](memory.DefaultConfig())
	publisher := event.NewPublisher[interface{}](queue)
	svc := New(WithEventPublisher(publisher))
	ctx := context.Background()

	request, err := svc.Initiate(ctx, "analysis")
	require.NoError(t, err)
	_, err = svc.Finalize(ctx, &review.Response{Data: "yes", OriginalRequest: request})
	require.NoError(t, err)

	expected := []string{event.TypeRequestCreated, event.TypeResponseReceived, event.TypeDecisionCreated}
	for _, eventType := range expected {
		e, err := publisher.Consume(ctx)
		require.NoError(t, err)
		assert.Equal(t, eventType, e.Context.EventType)
		assert.Equal(t, request.ID, e.Context.RequestID)
	}
}

func TestService_ActionMethods(t *testing.T) {
	svc := New()
	ctx := context.Background()

	exec, err := svc.Method("initiate")
	require.NoError(t, err)
	initiateOut := &InitiateOutput{}
	require.NoError(t, exec(ctx, &InitiateInput{Analysis: "analysis text"}, initiateOut))
	require.NotNil(t, initiateOut.Request)

	exec, err = svc.Method("finalize")
	require.NoError(t, err)
	finalizeOut := &FinalizeOutput{}
	require.NoError(t, exec(ctx, &FinalizeInput{RequestID: initiateOut.Request.ID, Reply: "yes"}, finalizeOut))
	require.NotNil(t, finalizeOut.Decision)
	assert.True(t, finalizeOut.Decision.Approved)
	assert.Equal(t, "analysis text", finalizeOut.Decision.AnalysisContent)

	_, err = svc.Method("unknown")
	assert.Error(t, err)
}
