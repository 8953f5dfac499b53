// Package dynamodb provides the DynamoDB-backed profile cache.
package dynamodb

import (
	"context"
	"fmt"
	"time"

	"anniversary-backend/domain/profile"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// ProfileCache implements the ProfileCache port using a DynamoDB table with
// a TTL attribute. Expiry is enforced on read as well, since DynamoDB's TTL
// sweep is eventually consistent.
type ProfileCache struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewProfileCache creates a new DynamoDB-backed profile cache
func NewProfileCache(client *dynamodb.Client, tableName string, logger *zap.Logger) *ProfileCache {
	return &ProfileCache{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// profileItem represents the DynamoDB item structure for a cached profile
type profileItem struct {
	PK                 string `dynamodbav:"PK"`
	FID                uint64 `dynamodbav:"FID"`
	CreatedAt          string `dynamodbav:"CreatedAt"`
	Username           string `dynamodbav:"Username"`
	ProfileName        string `dynamodbav:"ProfileName"`
	ProfileDisplayName string `dynamodbav:"ProfileDisplayName"`
	ProfileImage       string `dynamodbav:"ProfileImage"`
	ExpiresAt          int64  `dynamodbav:"ExpiresAt"`
}

func cacheKey(fid profile.FID) string {
	return fmt.Sprintf("PROFILE#%s", fid)
}

// Get retrieves a cached profile
func (c *ProfileCache) Get(ctx context.Context, fid profile.FID) (*profile.UserProfile, bool) {
	out, err := c.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(c.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: cacheKey(fid)},
		},
	})
	if err != nil {
		c.logger.Warn("profile cache read failed",
			zap.String("fid", fid.String()),
			zap.Error(err),
		)
		return nil, false
	}
	if out.Item == nil {
		return nil, false
	}

	var item profileItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		c.logger.Warn("profile cache item unmarshal failed",
			zap.String("fid", fid.String()),
			zap.Error(err),
		)
		return nil, false
	}

	if time.Now().Unix() > item.ExpiresAt {
		return nil, false
	}

	createdAt, err := time.Parse(time.RFC3339, item.CreatedAt)
	if err != nil {
		return nil, false
	}

	return &profile.UserProfile{
		FID:                profile.FID(item.FID),
		CreatedAt:          createdAt,
		Username:           item.Username,
		ProfileName:        item.ProfileName,
		ProfileDisplayName: item.ProfileDisplayName,
		ProfileImage:       item.ProfileImage,
	}, true
}

// Set stores a profile with an explicit TTL
func (c *ProfileCache) Set(ctx context.Context, p *profile.UserProfile, ttl time.Duration) error {
	item := profileItem{
		PK:                 cacheKey(p.FID),
		FID:                uint64(p.FID),
		CreatedAt:          p.CreatedAt.UTC().Format(time.RFC3339),
		Username:           p.Username,
		ProfileName:        p.ProfileName,
		ProfileDisplayName: p.ProfileDisplayName,
		ProfileImage:       p.ProfileImage,
		ExpiresAt:          time.Now().Add(ttl).Unix(),
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("marshal cache item: %w", err)
	}

	_, err = c.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(c.tableName),
		Item:      av,
	})
	return err
}

// Delete removes a cached profile
func (c *ProfileCache) Delete(ctx context.Context, fid profile.FID) error {
	_, err := c.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(c.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: cacheKey(fid)},
		},
	})
	return err
}

// Clear removes all cached profiles
func (c *ProfileCache) Clear(ctx context.Context) error {
	// Scan-and-delete; the cache table is small and Clear is an explicit,
	// operator-initiated action.
	paginator := dynamodb.NewScanPaginator(c.client, &dynamodb.ScanInput{
		TableName:            aws.String(c.tableName),
		ProjectionExpression: aws.String("PK"),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("scan cache table: %w", err)
		}
		for _, item := range page.Items {
			pk, ok := item["PK"].(*types.AttributeValueMemberS)
			if !ok {
				continue
			}
			if _, err := c.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
				TableName: aws.String(c.tableName),
				Key: map[string]types.AttributeValue{
					"PK": &types.AttributeValueMemberS{Value: pk.Value},
				},
			}); err != nil {
				return fmt.Errorf("delete cache item %s: %w", pk.Value, err)
			}
		}
	}
	return nil
}
