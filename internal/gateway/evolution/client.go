// Package evolution is the HTTP client for the Evolution API gateway.
// Every call carries per-tenant credentials since each tenant points at its
// own gateway deployment.
package evolution

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/RafaelDornellMiguel/CRM-WhatsApp/pkg/errorx"

	"go.uber.org/zap"
)

// Credentials identifies one tenant's gateway deployment.
type Credentials struct {
	BaseURL string
	APIKey  string
}

// Contact is one entry of the gateway contact listing.
type Contact struct {
	ID            string `json:"id"` // WhatsApp JID, e.g. 5511999999999@s.whatsapp.net
	Number        string `json:"number"`
	Name          string `json:"name"`
	ProfilePicURL string `json:"profilePictureUrl"`
}

// CreateInstanceResult reports whether the instance was freshly created or
// already existed on the gateway.
type CreateInstanceResult struct {
	AlreadyExists bool
}

// Gateway is the surface the services program against. Tests substitute a
// fake; production uses Client.
type Gateway interface {
	CreateInstance(ctx context.Context, creds Credentials, instanceName, webhookURL string) (*CreateInstanceResult, error)
	ConnectInstance(ctx context.Context, creds Credentials, instanceName string) (string, error)
	FetchConnectionState(ctx context.Context, creds Credentials, instanceName string) (string, error)
	FetchInstanceInfo(ctx context.Context, creds Credentials, instanceName string) (json.RawMessage, error)
	LogoutInstance(ctx context.Context, creds Credentials, instanceName string)
	DeleteInstance(ctx context.Context, creds Credentials, instanceName string)
	FetchContacts(ctx context.Context, creds Credentials, instanceName string) ([]Contact, error)
	SendText(ctx context.Context, creds Credentials, instanceName, number, text string) error
}

// Client talks to the Evolution API over HTTP.
type Client struct {
	httpClient *http.Client
}

// NewClient builds a Client with the gateway's documented 10s timeout.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func normalizeCreds(creds Credentials) (Credentials, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(creds.BaseURL), "/")
	if baseURL == "" {
		return Credentials{}, errorx.New(errorx.CodeConfigError, "URL da API não fornecida")
	}
	return Credentials{BaseURL: baseURL, APIKey: strings.TrimSpace(creds.APIKey)}, nil
}

// do issues one request with the apikey header and returns the raw body.
// Non-2xx responses come back as a gateway error that still carries the body
// so callers can inspect gateway messages.
func (c *Client) do(ctx context.Context, creds Credentials, method, path string, payload any) ([]byte, error) {
	creds, err := normalizeCreds(creds)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, errorx.Wrap(err, errorx.CodeGatewayError, "serialização do payload")
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, creds.BaseURL+path, body)
	if err != nil {
		return nil, errorx.Wrapf(err, errorx.CodeGatewayError, "montagem da requisição %s", path)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", creds.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errorx.Wrapf(err, errorx.CodeGatewayError, "chamada ao gateway %s", path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errorx.Wrapf(err, errorx.CodeGatewayError, "leitura da resposta %s", path)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return raw, errorx.Newf(errorx.CodeGatewayError,
			"gateway retornou %d em %s: %s", resp.StatusCode, path, string(raw))
	}
	return raw, nil
}

type createInstancePayload struct {
	InstanceName    string   `json:"instanceName"`
	Qrcode          bool     `json:"qrcode"`
	Integration     string   `json:"integration"`
	RejectCall      bool     `json:"reject_call"`
	MsgCall         string   `json:"msg_call"`
	GroupsIgnore    bool     `json:"groups_ignore"`
	AlwaysOnline    bool     `json:"always_online"`
	ReadMessages    bool     `json:"read_messages"`
	ReadStatus      bool     `json:"read_status"`
	Webhook         string   `json:"webhook,omitempty"`
	WebhookByEvents bool     `json:"webhook_by_events,omitempty"`
	Events          []string `json:"events,omitempty"`
}

// CreateInstance registers a new gateway instance. When the gateway answers
// that the name is already taken the call succeeds with AlreadyExists set,
// so a reconnect flow can proceed to fetch the QR code.
func (c *Client) CreateInstance(ctx context.Context, creds Credentials, instanceName, webhookURL string) (*CreateInstanceResult, error) {
	payload := createInstancePayload{
		InstanceName: instanceName,
		Qrcode:       true,
		Integration:  "WHATSAPP-BAILEYS",
		GroupsIgnore: true,
	}
	if strings.Contains(webhookURL, "http") {
		payload.Webhook = webhookURL
		payload.WebhookByEvents = true
		payload.Events = []string{"QRCODE_UPDATED", "MESSAGES_UPSERT", "MESSAGES_UPDATE", "CONNECTION_UPDATE"}
	}

	raw, err := c.do(ctx, creds, http.MethodPost, "/instance/create", payload)
	if err != nil {
		msg := string(raw)
		if strings.Contains(msg, "already in use") || strings.Contains(msg, "already exists") {
			zap.L().Info("instância já existe no gateway", zap.String("instance", instanceName))
			return &CreateInstanceResult{AlreadyExists: true}, nil
		}
		return nil, err
	}
	return &CreateInstanceResult{}, nil
}

type connectResponse struct {
	Code   string `json:"code"`
	Base64 string `json:"base64"`
}

// ConnectInstance asks the gateway for a pairing QR code. Depending on the
// gateway version the code arrives in "base64" or "code"; base64 wins when
// both are present.
func (c *Client) ConnectInstance(ctx context.Context, creds Credentials, instanceName string) (string, error) {
	raw, err := c.do(ctx, creds, http.MethodGet, "/instance/connect/"+instanceName, nil)
	if err != nil {
		return "", err
	}
	var resp connectResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", errorx.Wrap(err, errorx.CodeGatewayError, "decodificação do QR code")
	}
	if resp.Base64 != "" {
		return resp.Base64, nil
	}
	return resp.Code, nil
}

type connectionStateResponse struct {
	Instance struct {
		State string `json:"state"`
	} `json:"instance"`
}

// FetchConnectionState returns the raw gateway state string ("open",
// "connecting", "close", ...). Callers decide how unknown states map to
// local statuses.
func (c *Client) FetchConnectionState(ctx context.Context, creds Credentials, instanceName string) (string, error) {
	raw, err := c.do(ctx, creds, http.MethodGet, "/instance/connectionState/"+instanceName, nil)
	if err != nil {
		return "", err
	}
	var resp connectionStateResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", errorx.Wrap(err, errorx.CodeGatewayError, "decodificação do estado da conexão")
	}
	return resp.Instance.State, nil
}

// FetchInstanceInfo returns the gateway's raw instance record. The shape
// varies between gateway versions, so it is passed through untouched.
func (c *Client) FetchInstanceInfo(ctx context.Context, creds Credentials, instanceName string) (json.RawMessage, error) {
	raw, err := c.do(ctx, creds, http.MethodGet, "/instance/fetchInstances/"+instanceName, nil)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(raw), nil
}

// LogoutInstance disconnects the WhatsApp session. Failures are logged and
// swallowed: a dead instance cannot be logged out and the local cleanup must
// proceed anyway.
func (c *Client) LogoutInstance(ctx context.Context, creds Credentials, instanceName string) {
	if _, err := c.do(ctx, creds, http.MethodDelete, "/instance/logout/"+instanceName, nil); err != nil {
		zap.L().Warn("falha ao desconectar instância", zap.String("instance", instanceName), zap.Error(err))
	}
}

// DeleteInstance removes the instance from the gateway. Same tolerance as
// LogoutInstance.
func (c *Client) DeleteInstance(ctx context.Context, creds Credentials, instanceName string) {
	if _, err := c.do(ctx, creds, http.MethodDelete, "/instance/delete/"+instanceName, nil); err != nil {
		zap.L().Warn("falha ao remover instância", zap.String("instance", instanceName), zap.Error(err))
	}
}

// FetchContacts lists the contacts known to the instance.
func (c *Client) FetchContacts(ctx context.Context, creds Credentials, instanceName string) ([]Contact, error) {
	raw, err := c.do(ctx, creds, http.MethodGet, "/chat/fetchContacts/"+instanceName, nil)
	if err != nil {
		return nil, err
	}
	var contacts []Contact
	if err := json.Unmarshal(raw, &contacts); err != nil {
		return nil, errorx.Wrap(err, errorx.CodeGatewayError, "decodificação da lista de contatos")
	}
	return contacts, nil
}

type sendTextPayload struct {
	Number      string `json:"number"`
	Text        string `json:"text"`
	Delay       int    `json:"delay"`
	LinkPreview bool   `json:"linkPreview"`
}

// SendText delivers a text message through the instance.
func (c *Client) SendText(ctx context.Context, creds Credentials, instanceName, number, text string) error {
	payload := sendTextPayload{
		Number:      number,
		Text:        text,
		Delay:       1200,
		LinkPreview: true,
	}
	if _, err := c.do(ctx, creds, http.MethodPost, "/message/sendText/"+instanceName, payload); err != nil {
		return errorx.Wrap(err, errorx.CodeGatewayError, "falha ao enviar mensagem")
	}
	return nil
}

var _ Gateway = (*Client)(nil)

// String renders credentials without leaking the API key in logs.
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{BaseURL:%s, APIKey:***}", c.BaseURL)
}
