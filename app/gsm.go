package app

import (
	"context"
	"fmt"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	log "github.com/sirupsen/logrus"
)

func accessSecretVersion(client *secretmanager.Client, name string) (string, error) {
	req := &secretmanagerpb.AccessSecretVersionRequest{
		Name: fmt.Sprintf("projects/%s/secrets/%s/versions/latest", Config.GoogleSecretManager.ProjectId, name),
	}

	result, err := client.AccessSecretVersion(context.Background(), req)
	if err != nil {
		return "", err
	}

	return string(result.Payload.Data), nil
}

func readSecretsFromGSM() {
	if !Config.GoogleSecretManager.Enabled {
		log.Debug("[GSM] Google Secret Manager is disabled")
		return
	}

	if Config.GoogleSecretManager.ProjectId == "" {
		log.Fatalf("[GSM] ProjectId is empty")
	}

	ctx := context.Background()
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		log.Fatalf("[GSM] Failed to create secretmanager client: %v", err)
	}
	defer client.Close()

	if Config.MongoDB.URI == "" {
		if Config.GoogleSecretManager.MongoSecretName == "" {
			log.Fatalf("[GSM] Mongo secret name is empty")
		}

		log.Debug("[GSM] Reading mongo uri")
		Config.MongoDB.URI, err = accessSecretVersion(client, Config.GoogleSecretManager.MongoSecretName)
		if err != nil {
			log.Fatalf("[GSM] Failed to access mongo uri: %v", err)
		}
		log.Info("[GSM] Successfully read mongo uri")
	}

	if Config.MintAPI.APIKey == "" {
		if Config.GoogleSecretManager.APIKeySecretName == "" {
			log.Fatalf("[GSM] API key secret name is empty")
		}

		log.Debug("[GSM] Reading mint api key")
		Config.MintAPI.APIKey, err = accessSecretVersion(client, Config.GoogleSecretManager.APIKeySecretName)
		if err != nil {
			log.Fatalf("[GSM] Failed to access mint api key: %v", err)
		}
		log.Info("[GSM] Successfully read mint api key")
	}
}
