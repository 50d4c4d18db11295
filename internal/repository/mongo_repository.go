package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"anime-quotes-backend/internal/database"
	"anime-quotes-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewMongoRepositories builds document-store repositories, one collection per entity.
func NewMongoRepositories(db *database.MongoDatabase) *Repositories {
	base := func(name, sortField string) mongoBase {
		return mongoBase{
			coll:      db.Collection(name),
			name:      name,
			sortField: sortField,
			timeout:   db.GetQueryTimeout(),
		}
	}
	return &Repositories{
		Driver:       "mongo",
		Anime:        &mongoAnimeRepository{base(CollectionAnime, "created_at")},
		Characters:   &mongoCharacterRepository{base(CollectionCharacters, "created_at")},
		Quotes:       &mongoQuoteRepository{base(CollectionQuotes, "created_at")},
		StatusChecks: &mongoStatusCheckRepository{base(CollectionStatusChecks, "timestamp")},
		healthCheck:  db.HealthCheck,
		close:        db.Close,
	}
}

type mongoBase struct {
	coll *mongo.Collection
	name string
	// sortField orders every find, matching the postgres ORDER BY.
	sortField string
	timeout   time.Duration
}

func (r *mongoBase) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *mongoBase) count(ctx context.Context, filter bson.M) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, filter)
	return total, storeErr("count", r.name, err)
}

func (r *mongoBase) insertMany(ctx context.Context, docs []interface{}) error {
	if len(docs) == 0 {
		return nil
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	_, err := r.coll.InsertMany(ctx, docs)
	return storeErr("insert", r.name, err)
}

func (r *mongoBase) find(ctx context.Context, filter bson.M, limit int, out interface{}) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: r.sortField, Value: 1}}).
		SetLimit(int64(limit))
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return storeErr("find", r.name, err)
	}
	return storeErr("find", r.name, cur.All(ctx, out))
}

func (r *mongoBase) findBySlug(ctx context.Context, slug string, out interface{}) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return storeErr("find", r.name, err)
}

func (r *mongoBase) incrementCounter(ctx context.Context, slug, field string, delta int64) (int64, error) {
	if err := checkCounterField(field); err != nil {
		return 0, err
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"slug": slug}, bson.M{"$inc": bson.M{field: delta}})
	if err != nil {
		return 0, storeErr("increment", r.name, err)
	}
	return res.MatchedCount, nil
}

func (r *mongoBase) setCounter(ctx context.Context, slug, field string, value int64) error {
	if err := checkCounterField(field); err != nil {
		return err
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	_, err := r.coll.UpdateOne(ctx, bson.M{"slug": slug}, bson.M{"$set": bson.M{field: value}})
	return storeErr("set counter", r.name, err)
}

type mongoAnimeRepository struct {
	mongoBase
}

func (r *mongoAnimeRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, bson.M{})
}

func (r *mongoAnimeRepository) CreateMany(ctx context.Context, anime []models.Anime) error {
	docs := make([]interface{}, len(anime))
	for i := range anime {
		docs[i] = anime[i]
	}
	return r.insertMany(ctx, docs)
}

func (r *mongoAnimeRepository) FindAll(ctx context.Context, limit int) ([]models.Anime, error) {
	anime := []models.Anime{}
	if err := r.find(ctx, bson.M{}, limit, &anime); err != nil {
		return nil, err
	}
	return anime, nil
}

func (r *mongoAnimeRepository) FindBySlug(ctx context.Context, slug string) (*models.Anime, error) {
	var anime models.Anime
	if err := r.findBySlug(ctx, slug, &anime); err != nil {
		return nil, err
	}
	return &anime, nil
}

func (r *mongoAnimeRepository) IncrementCounter(ctx context.Context, slug, field string, delta int64) (int64, error) {
	return r.incrementCounter(ctx, slug, field, delta)
}

func (r *mongoAnimeRepository) SetCounter(ctx context.Context, slug, field string, value int64) error {
	return r.setCounter(ctx, slug, field, value)
}

type mongoCharacterRepository struct {
	mongoBase
}

func (r *mongoCharacterRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, bson.M{})
}

func (r *mongoCharacterRepository) CreateMany(ctx context.Context, characters []models.Character) error {
	docs := make([]interface{}, len(characters))
	for i := range characters {
		docs[i] = characters[i]
	}
	return r.insertMany(ctx, docs)
}

func (r *mongoCharacterRepository) FindAll(ctx context.Context, filter CharacterFilter, limit int) ([]models.Character, error) {
	query := bson.M{}
	if filter.AnimeSlug != "" {
		query["anime_slug"] = filter.AnimeSlug
	}

	characters := []models.Character{}
	if err := r.find(ctx, query, limit, &characters); err != nil {
		return nil, err
	}
	return characters, nil
}

func (r *mongoCharacterRepository) FindBySlug(ctx context.Context, slug string) (*models.Character, error) {
	var character models.Character
	if err := r.findBySlug(ctx, slug, &character); err != nil {
		return nil, err
	}
	return &character, nil
}

func (r *mongoCharacterRepository) IncrementCounter(ctx context.Context, slug, field string, delta int64) (int64, error) {
	return r.incrementCounter(ctx, slug, field, delta)
}

func (r *mongoCharacterRepository) SetCounter(ctx context.Context, slug, field string, value int64) error {
	return r.setCounter(ctx, slug, field, value)
}

type mongoQuoteRepository struct {
	mongoBase
}

func quoteFilterDoc(filter QuoteFilter) bson.M {
	query := bson.M{}
	if filter.AnimeSlug != "" {
		query["anime_slug"] = filter.AnimeSlug
	}
	if filter.CharacterSlug != "" {
		query["character_slug"] = filter.CharacterSlug
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Featured != nil {
		query["featured"] = *filter.Featured
	}
	return query
}

func (r *mongoQuoteRepository) Count(ctx context.Context, filter QuoteFilter) (int64, error) {
	return r.count(ctx, quoteFilterDoc(filter))
}

func (r *mongoQuoteRepository) Create(ctx context.Context, quote *models.Quote) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, quote)
	return storeErr("insert", r.name, err)
}

func (r *mongoQuoteRepository) CreateMany(ctx context.Context, quotes []models.Quote) error {
	docs := make([]interface{}, len(quotes))
	for i := range quotes {
		docs[i] = quotes[i]
	}
	return r.insertMany(ctx, docs)
}

func (r *mongoQuoteRepository) FindFiltered(ctx context.Context, filter QuoteFilter, limit int) ([]models.Quote, error) {
	quotes := []models.Quote{}
	if err := r.find(ctx, quoteFilterDoc(filter), limit, &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

func (r *mongoQuoteRepository) Search(ctx context.Context, text string, limit int) ([]models.Quote, error) {
	quotes := []models.Quote{}
	if text == "" {
		return quotes, nil
	}

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(text), Options: "i"}
	query := bson.M{"$or": bson.A{
		bson.M{"text": pattern},
		bson.M{"character": pattern},
		bson.M{"anime": pattern},
		bson.M{"category": pattern},
	}}
	if err := r.find(ctx, query, limit, &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

type mongoStatusCheckRepository struct {
	mongoBase
}

func (r *mongoStatusCheckRepository) Create(ctx context.Context, check *models.StatusCheck) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, check)
	return storeErr("insert", r.name, err)
}

func (r *mongoStatusCheckRepository) FindAll(ctx context.Context, limit int) ([]models.StatusCheck, error) {
	checks := []models.StatusCheck{}
	if err := r.find(ctx, bson.M{}, limit, &checks); err != nil {
		return nil, err
	}
	return checks, nil
}
