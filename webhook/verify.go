package webhook

import (
	"crypto"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/zkmint-labs/minting-backend/models"
)

const (
	sandboxTopicArnPrefix    = "arn:aws:sns:us-east-2:783421985614:"
	productionTopicArnPrefix = "arn:aws:sns:us-east-2:362750628221:"
)

// TopicArnPrefixForEnvironment resolves the topic allow-list prefix from
// the deployment environment selector unless an explicit override is
// configured.
func TopicArnPrefixForEnvironment(environment string, override string) string {
	if override != "" {
		return override
	}
	if environment == models.EnvironmentProduction {
		return productionTopicArnPrefix
	}
	return sandboxTopicArnPrefix
}

// verification stages, used to label rejections
const (
	StageStructure = "structure"
	StageOrigin    = "origin"
	StageSignature = "signature"
	StageTopic     = "topic"
)

// ValidationError reports which verification stage rejected an envelope.
type ValidationError struct {
	Stage string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("webhook validation failed at %s stage: %s", e.Stage, e.Err.Error())
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

var defaultCertHostPattern = regexp.MustCompile(`^sns\.[a-z0-9\-]+\.amazonaws\.com$`)

// Verifier authenticates notification envelopes before their payload is
// trusted. The signing certificate is fetched from the envelope's cert
// URL, which is only followed when it is HTTPS, ends in .pem and points
// at an allow-listed host; fetched certificates are cached per URL.
type Verifier struct {
	httpClient      *http.Client
	certHostPattern *regexp.Regexp
	topicArnPrefix  string

	certMu sync.Mutex
	certs  map[string]*x509.Certificate
}

func NewVerifier(topicArnPrefix string) *Verifier {
	return &Verifier{
		httpClient:      &http.Client{Timeout: 10 * time.Second},
		certHostPattern: defaultCertHostPattern,
		topicArnPrefix:  topicArnPrefix,
		certs:           map[string]*x509.Certificate{},
	}
}

// Verify authenticates the envelope and returns a *ValidationError if
// any stage rejects it.
func (v *Verifier) Verify(notification *Notification) error {
	if err := v.checkStructure(notification); err != nil {
		return &ValidationError{Stage: StageStructure, Err: err}
	}
	if err := v.checkCertURL(notification.SigningCertURL); err != nil {
		return &ValidationError{Stage: StageOrigin, Err: err}
	}
	if err := v.checkSignature(notification); err != nil {
		return &ValidationError{Stage: StageSignature, Err: err}
	}
	if err := v.checkTopic(notification.TopicArn); err != nil {
		return &ValidationError{Stage: StageTopic, Err: err}
	}
	return nil
}

func (v *Verifier) checkStructure(notification *Notification) error {
	switch notification.Type {
	case TypeNotification, TypeSubscriptionConfirmation, TypeUnsubscribeConfirmation:
	default:
		return fmt.Errorf("unknown notification type: %q", notification.Type)
	}
	if notification.MessageId == "" {
		return errors.New("missing message id")
	}
	if notification.TopicArn == "" {
		return errors.New("missing topic arn")
	}
	if notification.Timestamp == "" {
		return errors.New("missing timestamp")
	}
	if notification.Signature == "" {
		return errors.New("missing signature")
	}
	if notification.SigningCertURL == "" {
		return errors.New("missing signing cert url")
	}
	if notification.Type != TypeNotification {
		// subscription-control messages carry the handshake fields
		if notification.Token == "" {
			return errors.New("missing token")
		}
		if notification.SubscribeURL == "" {
			return errors.New("missing subscribe url")
		}
	}
	switch notification.SignatureVersion {
	case SignatureVersion1, SignatureVersion2:
	default:
		return fmt.Errorf("unsupported signature version: %q", notification.SignatureVersion)
	}
	return nil
}

func (v *Verifier) checkCertURL(certURL string) error {
	parsed, err := url.Parse(certURL)
	if err != nil {
		return fmt.Errorf("invalid signing cert url: %s", err.Error())
	}
	if parsed.Scheme != "https" {
		return fmt.Errorf("signing cert url is not https: %q", certURL)
	}
	if !strings.HasSuffix(parsed.Path, ".pem") {
		return fmt.Errorf("signing cert url does not point at a pem file: %q", certURL)
	}
	if !v.certHostPattern.MatchString(parsed.Hostname()) {
		return fmt.Errorf("signing cert host is not allow-listed: %q", parsed.Hostname())
	}
	return nil
}

func (v *Verifier) checkSignature(notification *Notification) error {
	signature, err := base64.StdEncoding.DecodeString(notification.Signature)
	if err != nil {
		return fmt.Errorf("signature is not valid base64: %s", err.Error())
	}

	cert, err := v.signingCert(notification.SigningCertURL)
	if err != nil {
		return err
	}
	publicKey, ok := cert.PublicKey.(*rsa.PublicKey)
	if !ok {
		return errors.New("signing cert does not carry an rsa key")
	}

	signed := buildSignString(notification)
	var hash crypto.Hash
	var digest []byte
	if notification.SignatureVersion == SignatureVersion2 {
		hash = crypto.SHA256
		sum := sha256.Sum256(signed)
		digest = sum[:]
	} else {
		hash = crypto.SHA1
		sum := sha1.Sum(signed)
		digest = sum[:]
	}

	if err := rsa.VerifyPKCS1v15(publicKey, hash, digest, signature); err != nil {
		return fmt.Errorf("signature does not match: %s", err.Error())
	}
	return nil
}

func (v *Verifier) checkTopic(topicArn string) error {
	if v.topicArnPrefix == "" {
		return errors.New("no topic allow-list configured")
	}
	if !strings.HasPrefix(topicArn, v.topicArnPrefix) {
		return fmt.Errorf("topic arn is not allow-listed: %q", topicArn)
	}
	return nil
}

// buildSignString reproduces the canonical string the sender signed:
// selected fields in alphabetical order, each as "Key\nValue\n".
// Notifications sign Message, MessageId, Subject (when present),
// Timestamp, TopicArn and Type; confirmations sign Message, MessageId,
// SubscribeURL, Timestamp, Token, TopicArn and Type.
func buildSignString(notification *Notification) []byte {
	var b strings.Builder
	writePair := func(key string, value string) {
		b.WriteString(key)
		b.WriteString("\n")
		b.WriteString(value)
		b.WriteString("\n")
	}

	writePair("Message", notification.Message)
	writePair("MessageId", notification.MessageId)
	if notification.Type == TypeNotification {
		if notification.Subject != "" {
			writePair("Subject", notification.Subject)
		}
		writePair("Timestamp", notification.Timestamp)
		writePair("TopicArn", notification.TopicArn)
		writePair("Type", notification.Type)
	} else {
		writePair("SubscribeURL", notification.SubscribeURL)
		writePair("Timestamp", notification.Timestamp)
		writePair("Token", notification.Token)
		writePair("TopicArn", notification.TopicArn)
		writePair("Type", notification.Type)
	}
	return []byte(b.String())
}

func (v *Verifier) signingCert(certURL string) (*x509.Certificate, error) {
	v.certMu.Lock()
	defer v.certMu.Unlock()

	if cert, ok := v.certs[certURL]; ok {
		return cert, nil
	}

	res, err := v.httpClient.Get(certURL)
	if err != nil {
		return nil, fmt.Errorf("error fetching signing cert: %s", err.Error())
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error fetching signing cert: status %d", res.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("error reading signing cert: %s", err.Error())
	}

	block, _ := pem.Decode(body)
	if block == nil {
		return nil, errors.New("signing cert is not valid pem")
	}
	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("error parsing signing cert: %s", err.Error())
	}

	v.certs[certURL] = cert
	return cert, nil
}

// ConfirmSubscription completes the subscription handshake by following
// the envelope's subscribe URL. Only called after the envelope verified.
func (v *Verifier) ConfirmSubscription(notification *Notification) error {
	if notification.SubscribeURL == "" {
		return errors.New("missing subscribe url")
	}
	parsed, err := url.Parse(notification.SubscribeURL)
	if err != nil || parsed.Scheme != "https" {
		return fmt.Errorf("invalid subscribe url: %q", notification.SubscribeURL)
	}

	res, err := v.httpClient.Get(notification.SubscribeURL)
	if err != nil {
		return fmt.Errorf("error confirming subscription: %s", err.Error())
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("error confirming subscription: status %d", res.StatusCode)
	}
	log.Info("[WEBHOOK] Confirmed subscription, topic: ", notification.TopicArn)
	return nil
}
