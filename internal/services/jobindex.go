package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
)

// JobIndexService keeps job-posting embeddings in Qdrant so the matcher can
// surface postings close to a resume. Optional at runtime: a nil index means
// the match response simply carries no similar postings.
type JobIndexService interface {
	InitCollection() error
	UpsertPosting(ctx context.Context, posting JobPosting, embedding []float32) error
	SearchSimilar(ctx context.Context, queryEmbedding []float32, limit int) ([]JobPostingMatch, error)
}

type JobPosting struct {
	ID          string
	Title       string
	Description string
}

type JobPostingMatch struct {
	Title string  `json:"title"`
	Score float32 `json:"score"`
}

type jobIndexService struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
}

func NewJobIndexService(urlStr, apiKey, collectionName string) (JobIndexService, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// gRPC client talks to port 6334 by default.
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &jobIndexService{
		client:         client,
		collectionName: collectionName,
		vectorSize:     768, // text-embedding-004 vector size
	}, nil
}

// InitCollection implements JobIndexService.
func (j *jobIndexService) InitCollection() error {
	ctx := context.Background()

	exists, err := j.client.CollectionExists(ctx, j.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}
	if exists {
		return nil
	}

	err = j.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: j.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     j.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	return nil
}

// UpsertPosting implements JobIndexService.
func (j *jobIndexService) UpsertPosting(ctx context.Context, posting JobPosting, embedding []float32) error {
	pointID := uuid.New()

	point := &qdrant.PointStruct{
		Id:      qdrant.NewIDNum(uint64(pointID.ID())),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"posting_id":  posting.ID,
			"title":       posting.Title,
			"description": posting.Description,
		}),
	}

	_, err := j.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: j.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert posting: %w", err)
	}

	return nil
}

// SearchSimilar implements JobIndexService.
func (j *jobIndexService) SearchSimilar(ctx context.Context, queryEmbedding []float32, limit int) ([]JobPostingMatch, error) {
	searchResult, err := j.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: j.collectionName,
		Query:          qdrant.NewQuery(queryEmbedding...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search postings: %w", err)
	}

	var matches []JobPostingMatch
	for _, point := range searchResult {
		match := JobPostingMatch{Score: point.Score}

		if title, ok := point.Payload["title"]; ok {
			if val, ok := title.GetKind().(*qdrant.Value_StringValue); ok {
				match.Title = val.StringValue
			}
		}

		matches = append(matches, match)
	}

	return matches, nil
}
