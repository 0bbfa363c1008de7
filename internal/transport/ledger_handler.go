// Package transport exposes the node control surface over HTTP and node health over gRPC.
package transport

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/pqledger/internal/ledger/model"
	"github.com/goodnatureofminers/pqledger/internal/ledger/service/coordinator"
	"github.com/goodnatureofminers/pqledger/internal/ledger/service/miner"
	"github.com/goodnatureofminers/pqledger/internal/wallet"
	"github.com/goodnatureofminers/pqledger/internal/wallet/keystore/badger"
)

const maxBodyBytes = 1 << 20

type (
	walletRequest struct {
		Alias    string `json:"alias"`
		Password string `json:"password"`
	}
	walletResponse struct {
		Alias   string        `json:"alias"`
		Address model.Address `json:"address"`
	}
	transferRequest struct {
		Alias     string        `json:"alias"`
		Password  string        `json:"password"`
		Recipient model.Address `json:"recipient"`
		Amount    model.Coin    `json:"amount"`
		Fee       model.Coin    `json:"fee"`
	}
	processResponse struct {
		Hash     model.Hash   `json:"hash"`
		Status   model.Status `json:"status"`
		Failures []string     `json:"failures,omitempty"`
	}
	minerResponse struct {
		Address model.Address `json:"address"`
		Mining  bool          `json:"mining"`
	}
	minersResponse struct {
		Miners []model.Address `json:"miners"`
	}
	balanceResponse struct {
		Address model.Address `json:"address"`
		Balance model.Coin    `json:"balance"`
	}
	errorResponse struct {
		Error    string   `json:"error"`
		Failures []string `json:"failures,omitempty"`
	}
)

// LedgerHandler serves mining control, wallet and transaction routes.
type LedgerHandler struct {
	miners      Miners
	coordinator Coordinator
	wallet      Wallet
	ledger      Ledger
	marshaler   runtime.Marshaler
	logger      *zap.Logger
}

// NewLedgerHandler returns a LedgerHandler instance.
func NewLedgerHandler(miners Miners, coordinator Coordinator, wallet Wallet, ledger Ledger, logger *zap.Logger) (*LedgerHandler, error) {
	if miners == nil || coordinator == nil || wallet == nil || ledger == nil {
		return nil, errors.New("ledger handler dependencies are required")
	}
	if logger == nil {
		return nil, errors.New("ledger handler logger is required")
	}
	return &LedgerHandler{
		miners:      miners,
		coordinator: coordinator,
		wallet:      wallet,
		ledger:      ledger,
		marshaler:   &runtime.JSONBuiltin{},
		logger:      logger.Named("ledger_handler"),
	}, nil
}

// Register attaches the routes to mux.
func (h *LedgerHandler) Register(mux *runtime.ServeMux) error {
	routes := []struct {
		method  string
		pattern string
		handler runtime.HandlerFunc
	}{
		{http.MethodGet, "/api/v1/miners", h.listMiners},
		{http.MethodPost, "/api/v1/miners/{address}", h.startMining},
		{http.MethodDelete, "/api/v1/miners/{address}", h.stopMining},
		{http.MethodPost, "/api/v1/wallets", h.createWallet},
		{http.MethodPost, "/api/v1/transfers", h.createTransfer},
		{http.MethodPost, "/api/v1/gossip/transactions", h.receiveGossip},
		{http.MethodGet, "/api/v1/addresses/{address}/balance", h.balance},
		{http.MethodGet, "/api/v1/transactions/{hash}", h.transaction},
	}
	for _, route := range routes {
		if err := mux.HandlePath(route.method, route.pattern, route.handler); err != nil {
			return fmt.Errorf("register %s %s: %w", route.method, route.pattern, err)
		}
	}
	return nil
}

func (h *LedgerHandler) listMiners(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	miners := h.miners.ActiveMiners()
	if miners == nil {
		miners = []model.Address{}
	}
	h.respond(w, http.StatusOK, minersResponse{Miners: miners})
}

func (h *LedgerHandler) startMining(w http.ResponseWriter, _ *http.Request, params map[string]string) {
	addr, err := model.ParseAddress(params["address"])
	if err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return
	}
	if !h.miners.StartMining(addr) {
		h.fail(w, http.StatusConflict, fmt.Errorf("%s: %w", addr, miner.ErrAlreadyMining))
		return
	}
	h.respond(w, http.StatusCreated, minerResponse{Address: addr, Mining: true})
}

func (h *LedgerHandler) stopMining(w http.ResponseWriter, _ *http.Request, params map[string]string) {
	addr, err := model.ParseAddress(params["address"])
	if err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return
	}
	if !h.miners.StopMining(addr) {
		h.fail(w, http.StatusConflict, fmt.Errorf("%s: %w", addr, miner.ErrNotMining))
		return
	}
	h.respond(w, http.StatusOK, minerResponse{Address: addr, Mining: false})
}

func (h *LedgerHandler) createWallet(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var req walletRequest
	if err := h.decode(w, r, &req); err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return
	}
	if req.Alias == "" || req.Password == "" {
		h.fail(w, http.StatusBadRequest, errors.New("alias and password are required"))
		return
	}

	addr, err := h.wallet.GenerateKeyPair(r.Context(), req.Alias, []byte(req.Password))
	if err != nil {
		h.fail(w, statusOf(err), err)
		return
	}
	h.respond(w, http.StatusCreated, walletResponse{Alias: req.Alias, Address: addr})
}

func (h *LedgerHandler) createTransfer(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var req transferRequest
	if err := h.decode(w, r, &req); err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return
	}
	if req.Alias == "" || req.Recipient == "" || req.Amount.IsZero() {
		h.fail(w, http.StatusBadRequest, errors.New("alias, recipient and amount are required"))
		return
	}

	tx, err := h.wallet.CreateTransfer(r.Context(), wallet.TransferRequest{
		Alias:     req.Alias,
		Password:  []byte(req.Password),
		Recipient: req.Recipient,
		Amount:    req.Amount,
		Fee:       req.Fee,
	})
	if err != nil {
		h.fail(w, statusOf(err), err)
		return
	}

	h.process(w, r, tx)
}

func (h *LedgerHandler) receiveGossip(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var tx model.Transaction
	if err := h.decode(w, r, &tx); err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return
	}
	if tx.Hash == "" {
		h.fail(w, http.StatusBadRequest, fmt.Errorf("transaction hash: %w", model.ErrInvalidHash))
		return
	}

	h.process(w, r, &tx)
}

func (h *LedgerHandler) process(w http.ResponseWriter, r *http.Request, tx *model.Transaction) {
	res, err := h.coordinator.Process(r.Context(), tx)
	if err != nil {
		h.fail(w, statusOf(err), err)
		return
	}

	status := tx.Status
	if known, ok := h.coordinator.Transaction(tx.Hash); ok {
		status = known.Status
	}
	if !res.Valid() {
		h.respond(w, http.StatusUnprocessableEntity, errorResponse{Error: "transaction rejected", Failures: res.Failures()})
		return
	}
	h.respond(w, http.StatusAccepted, processResponse{Hash: tx.Hash, Status: status})
}

func (h *LedgerHandler) balance(w http.ResponseWriter, r *http.Request, params map[string]string) {
	addr, err := model.ParseAddress(params["address"])
	if err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return
	}

	balance, err := h.wallet.Balance(r.Context(), addr)
	if err != nil {
		h.fail(w, statusOf(err), err)
		return
	}
	h.respond(w, http.StatusOK, balanceResponse{Address: addr, Balance: balance})
}

func (h *LedgerHandler) transaction(w http.ResponseWriter, r *http.Request, params map[string]string) {
	hash, err := model.ParseHash(params["hash"])
	if err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return
	}

	if tx, ok := h.coordinator.Transaction(hash); ok {
		h.respond(w, http.StatusOK, tx)
		return
	}

	tx, err := h.ledger.TransactionByHash(r.Context(), hash)
	if err != nil {
		h.fail(w, statusOf(err), err)
		return
	}
	h.respond(w, http.StatusOK, tx)
}

func (h *LedgerHandler) decode(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := h.marshaler.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}
	return nil
}

func (h *LedgerHandler) respond(w http.ResponseWriter, status int, v any) {
	payload, err := h.marshaler.Marshal(v)
	if err != nil {
		h.logger.Error("encode response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", h.marshaler.ContentType(v))
	w.WriteHeader(status)
	if _, err := w.Write(payload); err != nil {
		h.logger.Debug("write response", zap.Error(err))
	}
}

func (h *LedgerHandler) fail(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Error(err))
	}
	h.respond(w, status, errorResponse{Error: err.Error()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidAddress),
		errors.Is(err, model.ErrInvalidHash),
		errors.Is(err, model.ErrInvalidCoin),
		errors.Is(err, model.ErrInvalidOutputIndex),
		errors.Is(err, model.ErrUnknownKind):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrNotFound), errors.Is(err, badger.ErrKeyNotFound):
		return http.StatusNotFound
	case errors.Is(err, badger.ErrWrongPassword):
		return http.StatusUnauthorized
	case errors.Is(err, badger.ErrKeyExists), errors.Is(err, coordinator.ErrUnexpectedStatus):
		return http.StatusConflict
	case errors.Is(err, model.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
