package verifier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/config"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/domain"
	"github.com/maximlprive1990/mainnet-mini-mining-game/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var processingClaims sync.Map

// outcome of one provider lookup.
type outcome struct {
	confirmed bool
	notFound  bool
	amount    float64
	currency  string
}

type DepositService interface {
	Pending(ctx context.Context, limit uint32) ([]domain.DepositVerification, error)
	Approve(ctx context.Context, verificationID uuid.UUID, confirmedAmount float64) error
	Reject(ctx context.Context, verificationID uuid.UUID) error
}

type Notifier interface {
	Send(userID uuid.UUID, event string, payload interface{})
}

// Service polls pending deposit claims and checks them against the
// payment providers. Confirmed claims are credited through the deposit
// service, unknown ones rejected, and claims the provider still reports
// as pending stay in the queue for the next tick.
type Service struct {
	cfg            *config.Config
	depositService DepositService
	notifier       Notifier
	client         clients.HTTPClientI
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, depositService DepositService, notifier Notifier, client clients.HTTPClientI) *Service {
	return &Service{
		cfg:            cfg,
		depositService: depositService,
		notifier:       notifier,
		client:         client,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Second * 5,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Deposit verifier started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping verifier")
			return
		case <-ticker.C:
			s.processClaims(ctx)
		}
	}
}

func (s *Service) processClaims(ctx context.Context) {
	claims, err := s.depositService.Pending(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch pending claims", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, claim := range claims {
		claim := claim

		if _, loaded := processingClaims.LoadOrStore(claim.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingClaims.Delete(claim.ID)
				return s.handleClaim(ctx, claim)
			})
			if err != nil {
				processingClaims.Delete(claim.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing claims", zap.Error(err))
	}
}

func (s *Service) handleClaim(ctx context.Context, claim domain.DepositVerification) error {
	var result *outcome
	var err error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		switch claim.PaymentMethod {
		case domain.MethodPayeer:
			result, err = s.checkPayeer(claim.TransactionID)
		case domain.MethodFaucetPay:
			result, err = s.checkFaucetPay(claim.TransactionID)
		default:
			zap.L().Warn("Claim with unknown payment method, rejecting",
				zap.String("claimID", claim.ID.String()),
				zap.String("method", claim.PaymentMethod))
			return s.depositService.Reject(ctx, claim.ID)
		}

		if err == nil {
			break
		}
		if attempt < maxRetries {
			time.Sleep(retryInterval * time.Duration(attempt))
			continue
		}
		return fmt.Errorf("failed to verify claim %s after %d retries: %w", claim.ID, maxRetries, err)
	}

	switch {
	case result.confirmed:
		if err := s.depositService.Approve(ctx, claim.ID, result.amount); err != nil {
			return err
		}
		s.notifier.Send(claim.UserID, "deposit_verified", map[string]interface{}{
			"transaction_id": claim.TransactionID,
			"amount":         result.amount,
			"currency":       result.currency,
		})
	case result.notFound:
		if err := s.depositService.Reject(ctx, claim.ID); err != nil {
			return err
		}
		s.notifier.Send(claim.UserID, "deposit_rejected", map[string]interface{}{
			"transaction_id": claim.TransactionID,
		})
	default:
		// Provider still settling the payment, retry on a later tick.
		zap.L().Info("Claim still pending at provider",
			zap.String("claimID", claim.ID.String()),
			zap.String("transactionID", claim.TransactionID))
	}
	return nil
}

type payeerInfo struct {
	To          string      `json:"to"`
	From        string      `json:"from"`
	CreditedSum json.Number `json:"creditedSum"`
	CreditedCur string      `json:"creditedCur"`
	Status      string      `json:"status"`
}

type payeerResponse struct {
	AuthError json.Number     `json:"auth_error"`
	Errors    []string        `json:"errors"`
	Info      json.RawMessage `json:"info"`
}

func (s *Service) checkPayeer(transactionID string) (*outcome, error) {
	form := url.Values{
		"account":   {s.cfg.PayeerAccount},
		"apiId":     {s.cfg.PayeerAPIID},
		"apiPass":   {s.cfg.PayeerAPISecret},
		"action":    {"historyInfo"},
		"historyId": {transactionID},
	}

	statusCode, respBody, respHeaders, err := s.client.PostForm(s.cfg.PayeerAddress, form, nil)
	if err != nil {
		return nil, err
	}
	if statusCode == http.StatusTooManyRequests {
		waitForRetryAfter(respHeaders)
		return nil, fmt.Errorf("payeer rate limit for transaction %s", transactionID)
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("payeer returned status %d", statusCode)
	}

	var response payeerResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to parse payeer response: %w", err)
	}
	if authErr, _ := response.AuthError.Int64(); authErr != 0 {
		return nil, fmt.Errorf("payeer auth error %d", authErr)
	}

	// Payeer sends "info": false when the history entry does not exist.
	var info payeerInfo
	if len(response.Info) == 0 || json.Unmarshal(response.Info, &info) != nil {
		return &outcome{notFound: true}, nil
	}
	if info.To != s.cfg.PayeerAccount {
		return &outcome{notFound: true}, nil
	}
	if info.Status != "success" {
		return &outcome{}, nil
	}

	amount, _ := info.CreditedSum.Float64()
	return &outcome{confirmed: true, amount: amount, currency: info.CreditedCur}, nil
}

type faucetPayResponse struct {
	Success     bool `json:"success"`
	Transaction struct {
		ToEmail  string      `json:"to_email"`
		Amount   json.Number `json:"amount"`
		Currency string      `json:"currency"`
		Status   string      `json:"status"`
	} `json:"transaction"`
}

func (s *Service) checkFaucetPay(transactionID string) (*outcome, error) {
	query := url.Values{
		"api_key": {s.cfg.FaucetPayAPIKey},
		"hash":    {transactionID},
	}

	statusCode, respBody, respHeaders, err := s.client.Get(s.cfg.FaucetPayAddress+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	if statusCode == http.StatusTooManyRequests {
		waitForRetryAfter(respHeaders)
		return nil, fmt.Errorf("faucetpay rate limit for transaction %s", transactionID)
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("faucetpay returned status %d", statusCode)
	}

	var response faucetPayResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to parse faucetpay response: %w", err)
	}
	if !response.Success {
		return &outcome{notFound: true}, nil
	}
	if response.Transaction.ToEmail != s.cfg.FaucetPayEmail {
		return &outcome{notFound: true}, nil
	}
	if response.Transaction.Status != "completed" {
		return &outcome{}, nil
	}

	amount, _ := response.Transaction.Amount.Float64()
	return &outcome{confirmed: true, amount: amount, currency: response.Transaction.Currency}, nil
}

func waitForRetryAfter(respHeaders http.Header) {
	retryAfter := retryInterval
	if header := respHeaders.Get("Retry-After"); header != "" {
		if seconds, err := strconv.Atoi(header); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn("Rate limit detected", zap.Duration("retryAfter", retryAfter))
	time.Sleep(retryAfter)
}
