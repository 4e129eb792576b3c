package items

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/pokerole-bot/internal/entities"
	"github.com/KirkDiggler/pokerole-bot/internal/errors"
	"github.com/KirkDiggler/pokerole-bot/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/pokerole-bot/internal/redis"
)

const (
	itemKeyPrefix    = "item:"
	actorIndexPrefix = "item:actor:"

	// Error messages
	errItemNil      = "item cannot be nil"
	errItemIDEmpty  = "item ID cannot be empty"
	errActorIDEmpty = "actor ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis item repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed item repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

// GetKey returns the Redis key for an item
func GetKey(itemID string) string {
	return itemKeyPrefix + itemID
}

func validateItem(item *entities.Item) error {
	if item == nil {
		return errors.InvalidArgument(errItemNil)
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ID", item.ID, vb)
	errors.ValidateRequired("ActorID", item.ActorID, vb)
	errors.ValidateEnum("Kind", string(item.Kind),
		[]string{string(entities.ItemKindMove), string(entities.ItemKindGear)}, vb)
	for _, rule := range item.Rules {
		if !rule.Operator.IsValid() {
			vb.InvalidField("Rules", "unknown operator "+string(rule.Operator))
		}
	}
	return vb.Build()
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateItem(input.Item); err != nil {
		return nil, err
	}

	key := GetKey(input.Item.ID)
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("item with ID %s already exists", input.Item.ID)
	}

	now := r.clock.Now().Unix()
	input.Item.CreatedAt = now
	input.Item.UpdatedAt = now

	data, err := json.Marshal(input.Item)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal item")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, actorIndexPrefix+input.Item.ActorID, input.Item.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create item")
	}

	return &CreateOutput{Item: input.Item}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	result, err := r.client.Get(ctx, GetKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("item with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get item")
	}

	var item entities.Item
	if err := json.Unmarshal([]byte(result), &item); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal item")
	}

	return &GetOutput{Item: &item}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateItem(input.Item); err != nil {
		return nil, err
	}

	existing, err := r.Get(ctx, GetInput{ID: input.Item.ID})
	if err != nil {
		return nil, err
	}

	input.Item.CreatedAt = existing.Item.CreatedAt
	input.Item.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(input.Item)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal item")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, GetKey(input.Item.ID), data, 0)
	if existing.Item.ActorID != input.Item.ActorID {
		pipe.SRem(ctx, actorIndexPrefix+existing.Item.ActorID, input.Item.ID)
		pipe.SAdd(ctx, actorIndexPrefix+input.Item.ActorID, input.Item.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update item")
	}

	return &UpdateOutput{Item: input.Item}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	existing, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, GetKey(input.ID))
	pipe.SRem(ctx, actorIndexPrefix+existing.Item.ActorID, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete item")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByActor(ctx context.Context, input ListByActorInput) (*ListByActorOutput, error) {
	if input.ActorID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	indexKey := actorIndexPrefix + input.ActorID
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get items from index %s", indexKey)
	}

	items := make([]*entities.Item, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "item not found, cleaning up index",
					"item_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get item %s", id)
		}
		items = append(items, out.Item)
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].ID < items[j].ID
	})

	return &ListByActorOutput{Items: items}, nil
}
