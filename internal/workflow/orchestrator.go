// Package workflow turns submissions and vote clicks into ledger writes, approval
// decisions and a single update of the request message.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"funding_approval_system/configs"
	"funding_approval_system/internal/db/models"
	"funding_approval_system/internal/display"
	"funding_approval_system/internal/ledger"
	"funding_approval_system/internal/voting"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const (
	notBoardMemberText    = "Du må være medlem av styrekanalen for å stemme."
	submittedText         = "Din søknad for \"%s\" er sendt til styret for godkjenning! 🎉"
	approvedRequesterText = "🎉 Gratulerer! Din søknad for \"%s\" er godkjent!"
	approvedThreadText    = "✅ Søknaden er godkjent! %s er varslet."
)

type VoteEvent struct {
	RequestID int64
	VoterID   string
	Choice    voting.Choice

	// Message is where the click happened. Prior is its current content.
	Message MessageRef
	Prior   []display.Segment
}

func (e VoteEvent) validate() error {
	switch {
	case e.RequestID <= 0:
		return fmt.Errorf("%w: request id %d", ErrInvalidVote, e.RequestID)
	case e.VoterID == "":
		return fmt.Errorf("%w: empty voter id", ErrInvalidVote)
	case !e.Choice.IsValid():
		return fmt.Errorf("%w: choice %q", ErrInvalidVote, e.Choice)
	}
	return nil
}

type VoteResult struct {
	Action        voting.Action
	Tally         voting.Tally
	Approved      bool
	NewlyApproved bool
	Segments      []display.Segment
}

type Orchestrator struct {
	store   ledger.Store
	chat    Chat
	config  configs.App
	logger  *zap.SugaredLogger
	metrics *metrics
}

func NewOrchestrator(
	store ledger.Store,
	chat Chat,
	config configs.App,
	logger *zap.SugaredLogger,
	registerer prometheus.Registerer,
) *Orchestrator {
	return &Orchestrator{
		store:   store,
		chat:    chat,
		config:  config,
		logger:  logger,
		metrics: newMetrics(registerer),
	}
}

// HandleVote records one vote click and brings the request message up to date. Once the
// vote is written it is never rolled back: a failed message update is reported as
// ErrDisplayUpdate together with the result.
func (o *Orchestrator) HandleVote(ctx context.Context, event VoteEvent) (VoteResult, error) {
	if err := event.validate(); err != nil {
		o.logger.Warnw("dropping vote event", "error", err)
		return VoteResult{}, err
	}

	isMember, err := o.chat.IsMember(ctx, o.config.BoardChannelID, event.VoterID)
	if err != nil {
		o.logger.Errorw("failed to check board membership", "error", err, "voterID", event.VoterID)
		return VoteResult{}, fmt.Errorf("failed to check board membership: %w", err)
	}
	if !isMember {
		o.metrics.rejectedVotes.Inc()
		o.logger.Infow("voter is not a board member", "voterID", event.VoterID, "requestID", event.RequestID)

		if err := o.chat.PostEphemeral(ctx, event.Message.ChannelID, event.VoterID, notBoardMemberText); err != nil {
			o.logger.Errorw("failed to notify voter", "error", err, "voterID", event.VoterID)
		}
		return VoteResult{}, ErrNotBoardMember
	}

	request, err := o.store.GetRequest(ctx, event.RequestID)
	if err != nil {
		o.logger.Errorw("failed to get request", "error", err, "requestID", event.RequestID)
		return VoteResult{}, err
	}

	votes, err := o.store.GetVotes(ctx, request.ID)
	if err != nil {
		o.logger.Errorw("failed to get votes", "error", err, "requestID", request.ID)
		return VoteResult{}, err
	}

	decision := voting.RecordVote(voting.FindVote(votes, event.VoterID), event.VoterID, request.ID, event.Choice)
	if err := o.apply(ctx, decision, event); err != nil {
		o.logger.Errorw("failed to record vote", "error", err, "requestID", request.ID, "voterID", event.VoterID)
		return VoteResult{}, fmt.Errorf("failed to record vote: %w", err)
	}
	o.metrics.votes.WithLabelValues(string(decision.Action)).Inc()
	o.logger.Infow("vote recorded", "requestID", request.ID, "voterID", event.VoterID, "action", decision.Action)

	ref := event.Message
	if ref.IsZero() {
		ref = MessageRef{ChannelID: request.ChannelID, MessageID: request.MessageID}
	}

	result, err := o.settle(ctx, request, event.Prior, ref)
	result.Action = decision.Action
	return result, err
}

func (o *Orchestrator) apply(ctx context.Context, decision voting.Decision, event VoteEvent) error {
	if decision.Action == voting.ActionRetract {
		return o.store.DeleteVote(ctx, event.VoterID, event.RequestID)
	}
	return o.store.UpsertVote(ctx, *decision.Vote)
}

// settle recomputes the tally from the ledger, latches approval on the first transition
// and pushes the reconciled segments to ref.
func (o *Orchestrator) settle(
	ctx context.Context,
	request *models.Request,
	prior []display.Segment,
	ref MessageRef,
) (VoteResult, error) {
	votes, err := o.store.GetVotes(ctx, request.ID)
	if err != nil {
		o.logger.Errorw("failed to get votes", "error", err, "requestID", request.ID)
		return VoteResult{}, err
	}

	tally := voting.Compute(votes)
	result := VoteResult{
		Tally:    tally,
		Approved: voting.DecideApproval(tally, request.IsApproved(), o.config.ApprovalThreshold),
	}

	if result.Approved && !request.IsApproved() {
		result.Approved, result.NewlyApproved = o.latch(ctx, request, ref)
	}

	mention := o.mention(ctx)
	if !display.Has(prior, display.RoleHeader) || !display.Has(prior, display.RoleActions) {
		prior = restore(display.Build(request, mention), prior)
	}

	result.Segments = display.Reconciler{Mention: mention}.Reconcile(prior, tally, result.Approved)

	if ref.IsZero() {
		o.logger.Warnw("request has no message to update", "requestID", request.ID)
		return result, nil
	}

	content := Content{Text: display.FallbackFor(request, mention), Segments: result.Segments}
	if err := o.chat.UpdateMessage(ctx, ref, content); err != nil {
		o.metrics.displayFailures.Inc()
		o.logger.Errorw("failed to update request message", "error", err, "requestID", request.ID)
		return result, fmt.Errorf("%w: %w", ErrDisplayUpdate, err)
	}

	return result, nil
}

// latch marks the request approved and notifies the requester and the request thread.
// Only the caller whose write flips the flag sends notifications.
func (o *Orchestrator) latch(ctx context.Context, request *models.Request, ref MessageRef) (approved, newlyApproved bool) {
	_, err := o.store.MarkApproved(ctx, request.ID)
	if errors.Is(err, ledger.ErrAlreadyApproved) {
		return true, false
	}
	if err != nil {
		o.logger.Errorw("failed to mark request approved", "error", err, "requestID", request.ID)
		return false, false
	}

	o.metrics.approvals.Inc()
	o.logger.Infow("request approved", "requestID", request.ID)

	o.notify(ctx, request.RequesterID, Content{Text: fmt.Sprintf(approvedRequesterText, request.Title)})
	if !ref.IsZero() {
		o.notify(ctx, ref.ChannelID, Content{
			Text:    fmt.Sprintf(approvedThreadText, o.chat.Mention(ctx, request.RequesterID)),
			ReplyTo: &ref,
		})
	}

	return true, true
}

func (o *Orchestrator) notify(ctx context.Context, channelID string, content Content) {
	if _, err := o.chat.PostMessage(ctx, channelID, content); err != nil {
		o.logger.Errorw("could not send message", "error", err, "channelID", channelID)
	}
}

func (o *Orchestrator) mention(ctx context.Context) display.Mention {
	return func(userID string) string {
		return o.chat.Mention(ctx, userID)
	}
}

// restore carries voter lists from a damaged prior over to a freshly built one, so an
// approved request keeps the list it was decided with.
func restore(built, prior []display.Segment) []display.Segment {
	for _, segment := range prior {
		if segment.Role == display.RoleVoterList {
			built = append(built, segment)
		}
	}
	return built
}

// SubmitRequest stores a new request, posts it to the requests channel and confirms to
// the requester.
func (o *Orchestrator) SubmitRequest(ctx context.Context, newRequest models.NewRequest) (*models.Request, error) {
	newRequest.Title = strings.TrimSpace(newRequest.Title)
	newRequest.Amount = strings.TrimSpace(newRequest.Amount)
	newRequest.Description = strings.TrimSpace(newRequest.Description)
	if newRequest.Description == "" {
		newRequest.Description = display.NoDescriptionText
	}

	if err := validateNewRequest(newRequest); err != nil {
		o.logger.Warnw("rejecting request", "error", err, "requesterID", newRequest.RequesterID)
		return nil, err
	}

	request, err := o.store.CreateRequest(ctx, newRequest)
	if err != nil {
		o.logger.Errorw("failed to create request", "error", err, "requesterID", newRequest.RequesterID)
		return nil, err
	}
	o.metrics.submissions.Inc()
	o.logger.Infow("request created", "requestID", request.ID, "requesterID", request.RequesterID)

	if err := o.publish(ctx, request); err != nil {
		return request, err
	}

	if err := o.chat.PostEphemeral(ctx, request.RequesterID, request.RequesterID, fmt.Sprintf(submittedText, request.Title)); err != nil {
		o.logger.Errorw("failed to confirm submission", "error", err, "requestID", request.ID)
	}

	return request, nil
}

func validateNewRequest(request models.NewRequest) error {
	switch {
	case request.Title == "":
		return fmt.Errorf("%w: title is required", ErrInvalidRequest)
	case !request.GroupTag.IsValid():
		return fmt.Errorf("%w: unknown group %q", ErrInvalidRequest, request.GroupTag)
	case request.Amount == "":
		return fmt.Errorf("%w: amount is required", ErrInvalidRequest)
	case request.RequesterID == "":
		return fmt.Errorf("%w: requester is required", ErrInvalidRequest)
	}
	return nil
}

// publish posts the request message and stores where it lives.
func (o *Orchestrator) publish(ctx context.Context, request *models.Request) error {
	mention := o.mention(ctx)
	content := Content{
		Text:     display.FallbackFor(request, mention),
		Segments: display.Build(request, mention),
	}

	ref, err := o.chat.PostMessage(ctx, o.config.RequestsChannelID, content)
	if err != nil {
		o.logger.Errorw("failed to post request message", "error", err, "requestID", request.ID)
		return fmt.Errorf("failed to post request message: %w", err)
	}

	if err := o.store.SetMessageRef(ctx, request.ID, ref.ChannelID, ref.MessageID); err != nil {
		o.logger.Errorw("failed to store message reference", "error", err, "requestID", request.ID)
		return err
	}
	request.ChannelID = ref.ChannelID
	request.MessageID = ref.MessageID

	return nil
}

// Resync brings every pending request message in line with the ledger. Requests whose
// message was never posted are posted now. It returns how many requests were synced.
func (o *Orchestrator) Resync(ctx context.Context) (int, error) {
	requests, err := o.store.ListPending(ctx)
	if err != nil {
		o.logger.Errorw("failed to list pending requests", "error", err)
		return 0, err
	}

	var (
		synced int
		errs   []error
	)
	for i := range requests {
		request := &requests[i]

		if !request.HasMessage() {
			if err := o.publish(ctx, request); err != nil {
				errs = append(errs, err)
				continue
			}
		}

		ref := MessageRef{ChannelID: request.ChannelID, MessageID: request.MessageID}
		if _, err := o.settle(ctx, request, nil, ref); err != nil {
			errs = append(errs, fmt.Errorf("request %d: %w", request.ID, err))
			continue
		}
		synced++
	}

	o.logger.Infow("resync finished", "pending", len(requests), "synced", synced)
	return synced, errors.Join(errs...)
}
