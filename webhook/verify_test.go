package webhook

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/base64"
	"encoding/pem"
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkmint-labs/minting-backend/models"

	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetOutput(io.Discard)
}

const (
	testTopicArnPrefix = "arn:aws:sns:us-east-2:362750628221:"
	testTopicArn       = testTopicArnPrefix + "mint-request-updated"
)

type testSigner struct {
	key         *rsa.PrivateKey
	server      *httptest.Server
	certURL     string
	certFetches atomic.Int64
}

func newTestSigner(t *testing.T) *testSigner {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	template := x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "test-signer"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
	}
	der, err := x509.CreateCertificate(rand.Reader, &template, &template, &key.PublicKey, key)
	require.NoError(t, err)
	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})

	s := &testSigner{key: key}
	s.server = httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.certFetches.Add(1)
		_, _ = w.Write(certPEM)
	}))
	t.Cleanup(s.server.Close)
	s.certURL = s.server.URL + "/cert.pem"
	return s
}

func (s *testSigner) verifier(topicArnPrefix string) *Verifier {
	v := NewVerifier(topicArnPrefix)
	v.httpClient = s.server.Client()
	v.certHostPattern = regexp.MustCompile(`^127\.0\.0\.1$`)
	return v
}

func (s *testSigner) sign(t *testing.T, notification *Notification) {
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

	signature, err := rsa.SignPKCS1v15(rand.Reader, s.key, hash, digest)
	require.NoError(t, err)
	notification.Signature = base64.StdEncoding.EncodeToString(signature)
}

func (s *testSigner) notification(t *testing.T, signatureVersion string) *Notification {
	n := &Notification{
		Type:             TypeNotification,
		MessageId:        "message-1",
		TopicArn:         testTopicArn,
		Message:          `{"event_name":"imtbl_zkevm_mint_request_updated"}`,
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
		SignatureVersion: signatureVersion,
		SigningCertURL:   s.certURL,
	}
	s.sign(t, n)
	return n
}

func assertStage(t *testing.T, err error, stage string) {
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, stage, validationErr.Stage)
}

func TestVerify(t *testing.T) {
	signer := newTestSigner(t)

	t.Run("Valid Signature Version 2", func(t *testing.T) {
		v := signer.verifier(testTopicArnPrefix)
		assert.NoError(t, v.Verify(signer.notification(t, SignatureVersion2)))
	})

	t.Run("Valid Signature Version 1", func(t *testing.T) {
		v := signer.verifier(testTopicArnPrefix)
		assert.NoError(t, v.Verify(signer.notification(t, SignatureVersion1)))
	})

	t.Run("Tampered Message", func(t *testing.T) {
		v := signer.verifier(testTopicArnPrefix)
		n := signer.notification(t, SignatureVersion2)
		n.Message = `{"event_name":"imtbl_zkevm_mint_request_updated","data":{"owner_address":"0xattacker"}}`

		assertStage(t, v.Verify(n), StageSignature)
	})

	t.Run("Wrong Signature Version Hash", func(t *testing.T) {
		v := signer.verifier(testTopicArnPrefix)
		n := signer.notification(t, SignatureVersion2)
		n.SignatureVersion = SignatureVersion1

		assertStage(t, v.Verify(n), StageSignature)
	})

	t.Run("Allowed Topic Prefix", func(t *testing.T) {
		v := signer.verifier("arn:aws:sns:us-east-2:362750628221:")
		assert.NoError(t, v.Verify(signer.notification(t, SignatureVersion2)))
	})

	t.Run("Untrusted Topic", func(t *testing.T) {
		v := signer.verifier("arn:aws:sns:us-east-2:999999999999:")
		assertStage(t, v.Verify(signer.notification(t, SignatureVersion2)), StageTopic)
	})

	t.Run("Empty Allow-List Fails Closed", func(t *testing.T) {
		// a correctly signed envelope from an arbitrary topic must not
		// pass just because no prefix was configured
		v := signer.verifier("")
		n := signer.notification(t, SignatureVersion2)
		n.TopicArn = "arn:aws:sns:us-east-1:999999999999:attacker-topic"
		signer.sign(t, n)

		assertStage(t, v.Verify(n), StageTopic)
	})
}

func TestTopicArnPrefixForEnvironment(t *testing.T) {
	assert.Equal(t, productionTopicArnPrefix, TopicArnPrefixForEnvironment(models.EnvironmentProduction, ""))
	assert.Equal(t, sandboxTopicArnPrefix, TopicArnPrefixForEnvironment(models.EnvironmentSandbox, ""))
	assert.Equal(t, testTopicArnPrefix, TopicArnPrefixForEnvironment(models.EnvironmentProduction, testTopicArnPrefix))
}

func TestVerifyStructure(t *testing.T) {
	signer := newTestSigner(t)
	v := signer.verifier(testTopicArnPrefix)

	t.Run("Unknown Type", func(t *testing.T) {
		n := signer.notification(t, SignatureVersion2)
		n.Type = "Broadcast"
		assertStage(t, v.Verify(n), StageStructure)
	})

	t.Run("Unsupported Signature Version", func(t *testing.T) {
		n := signer.notification(t, SignatureVersion2)
		n.SignatureVersion = "3"
		assertStage(t, v.Verify(n), StageStructure)
	})

	t.Run("Missing Signature", func(t *testing.T) {
		n := signer.notification(t, SignatureVersion2)
		n.Signature = ""
		assertStage(t, v.Verify(n), StageStructure)
	})

	t.Run("Confirmation Missing Token", func(t *testing.T) {
		n := &Notification{
			Type:             TypeSubscriptionConfirmation,
			MessageId:        "message-1",
			TopicArn:         testTopicArn,
			Timestamp:        time.Now().UTC().Format(time.RFC3339),
			SignatureVersion: SignatureVersion2,
			SigningCertURL:   signer.certURL,
			SubscribeURL:     "https://127.0.0.1/confirm",
		}
		signer.sign(t, n)
		assertStage(t, v.Verify(n), StageStructure)
	})

	t.Run("Confirmation Missing Subscribe URL", func(t *testing.T) {
		n := &Notification{
			Type:             TypeSubscriptionConfirmation,
			MessageId:        "message-1",
			TopicArn:         testTopicArn,
			Timestamp:        time.Now().UTC().Format(time.RFC3339),
			SignatureVersion: SignatureVersion2,
			SigningCertURL:   signer.certURL,
			Token:            "token-1",
		}
		signer.sign(t, n)
		assertStage(t, v.Verify(n), StageStructure)
	})
}

func TestVerifyCertURL(t *testing.T) {
	signer := newTestSigner(t)
	v := signer.verifier(testTopicArnPrefix)

	t.Run("Plain HTTP", func(t *testing.T) {
		n := signer.notification(t, SignatureVersion2)
		n.SigningCertURL = "http://127.0.0.1/cert.pem"
		assertStage(t, v.Verify(n), StageOrigin)
	})

	t.Run("Not A Pem File", func(t *testing.T) {
		n := signer.notification(t, SignatureVersion2)
		n.SigningCertURL = "https://127.0.0.1/cert.txt"
		assertStage(t, v.Verify(n), StageOrigin)
	})

	t.Run("Untrusted Host", func(t *testing.T) {
		n := signer.notification(t, SignatureVersion2)
		n.SigningCertURL = "https://evil.example.com/cert.pem"
		assertStage(t, v.Verify(n), StageOrigin)
	})

	t.Run("Default Pattern Accepts Sns Hosts Only", func(t *testing.T) {
		assert.True(t, defaultCertHostPattern.MatchString("sns.us-east-2.amazonaws.com"))
		assert.False(t, defaultCertHostPattern.MatchString("sns.us-east-2.amazonaws.com.evil.example"))
	})
}

func TestSigningCertCache(t *testing.T) {
	signer := newTestSigner(t)
	v := signer.verifier(testTopicArnPrefix)

	assert.NoError(t, v.Verify(signer.notification(t, SignatureVersion2)))
	assert.NoError(t, v.Verify(signer.notification(t, SignatureVersion2)))

	// the second verification reuses the cached certificate
	assert.Equal(t, int64(1), signer.certFetches.Load())
}

func TestConfirmSubscription(t *testing.T) {
	signer := newTestSigner(t)

	t.Run("Follows Subscribe URL", func(t *testing.T) {
		var confirmed atomic.Bool
		confirmServer := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			confirmed.Store(true)
		}))
		defer confirmServer.Close()

		v := signer.verifier(testTopicArnPrefix)
		v.httpClient = confirmServer.Client()

		n := &Notification{
			Type:         TypeSubscriptionConfirmation,
			TopicArn:     testTopicArn,
			SubscribeURL: confirmServer.URL + "/confirm",
		}
		assert.NoError(t, v.ConfirmSubscription(n))
		assert.True(t, confirmed.Load())
	})

	t.Run("Missing Subscribe URL", func(t *testing.T) {
		v := signer.verifier(testTopicArnPrefix)
		assert.Error(t, v.ConfirmSubscription(&Notification{Type: TypeSubscriptionConfirmation}))
	})

	t.Run("Rejects Plain HTTP Subscribe URL", func(t *testing.T) {
		v := signer.verifier(testTopicArnPrefix)
		n := &Notification{
			Type:         TypeSubscriptionConfirmation,
			SubscribeURL: "http://127.0.0.1/confirm",
		}
		assert.Error(t, v.ConfirmSubscription(n))
	})
}
