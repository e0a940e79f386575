package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilythestrangee/twitter-clone/backend/internal/models"
)

func TestCreateTweet(t *testing.T) {
	env := newTestEnv(t)
	user, token := env.createUser(t, "alice", "alice@example.com")

	w := env.do(t, http.MethodPost, "/api/v1/tweet/create", token, models.CreateTweetRequest{
		Title: "hello",
		Body:  "first tweet",
		Tags:  "intro,hello",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var tweet models.Tweet
	require.NoError(t, env.db.Where("title = ?", "hello").First(&tweet).Error)
	assert.Equal(t, user.ID, tweet.OwnerID)
}

func TestCreateTweetRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/tweet/create", "", models.CreateTweetRequest{Title: "hello"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateTweetRequiresTitle(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "alice", "alice@example.com")

	w := env.do(t, http.MethodPost, "/api/v1/tweet/create", token, map[string]string{"body": "no title"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func seedTweets(t *testing.T, env *testEnv, n int) {
	t.Helper()
	user, _ := env.createUser(t, "seeder", "seeder@example.com")
	for i := 1; i <= n; i++ {
		env.createTweet(t, user.ID, fmt.Sprintf("tweet %d", i))
	}
}

func TestListV1PaginationEnvelope(t *testing.T) {
	env := newTestEnv(t)
	seedTweets(t, env, 25)

	w := env.do(t, http.MethodGet, "/api/v1/tweet?page=2&pageSize=10", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var page TweetPage
	decodeJSON(t, w, &page)
	assert.Equal(t, int64(25), page.TotalCount)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 10, page.PageSize)
	assert.Equal(t, int64(3), page.TotalPages)
	assert.Len(t, page.Tweets, 10)
}

func TestListV1ClampsPageParams(t *testing.T) {
	env := newTestEnv(t)
	seedTweets(t, env, 5)

	cases := []struct {
		query        string
		wantPage     int
		wantPageSize int
	}{
		{"page=0", 1, 10},
		{"page=-5", 1, 10},
		{"pageSize=0", 1, 10},
		{"pageSize=-3", 1, 10},
		{"page=abc&pageSize=xyz", 1, 10},
		{"", 1, 10},
		{"page=2&pageSize=3", 2, 3},
	}

	for _, tc := range cases {
		w := env.do(t, http.MethodGet, "/api/v1/tweet?"+tc.query, "", nil)
		require.Equal(t, http.StatusOK, w.Code, tc.query)

		var page TweetPage
		decodeJSON(t, w, &page)
		assert.Equal(t, tc.wantPage, page.Page, tc.query)
		assert.Equal(t, tc.wantPageSize, page.PageSize, tc.query)
	}
}

func TestListV1TotalPagesCeiling(t *testing.T) {
	env := newTestEnv(t)
	seedTweets(t, env, 21)

	w := env.do(t, http.MethodGet, "/api/v1/tweet?pageSize=10", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var page TweetPage
	decodeJSON(t, w, &page)
	assert.Equal(t, int64(3), page.TotalPages, "21 tweets / 10 per page rounds up to 3")
}

func TestListV1DeprecationHeaders(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/v1/tweet", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "true", w.Header().Get("Deprecation"))
	assert.Contains(t, w.Header().Get("Link"), "/api/v2/tweet")
	assert.Contains(t, w.Header().Get("Warning"), "deprecated")
}

func TestListV2CacheHitIsByteIdentical(t *testing.T) {
	env := newTestEnv(t)
	seedTweets(t, env, 15)

	first := env.do(t, http.MethodGet, "/api/v2/tweet?page=1&pageSize=10", "", nil)
	require.Equal(t, http.StatusOK, first.Code)

	second := env.do(t, http.MethodGet, "/api/v2/tweet?page=1&pageSize=10", "", nil)
	require.Equal(t, http.StatusOK, second.Code)

	assert.Equal(t, first.Body.String(), second.Body.String())
}

// A freshly created tweet does not appear in an already-cached page; this
// staleness is the documented trade-off of the v2 listing.
func TestListV2ServesStalePageUntilExpiry(t *testing.T) {
	env := newTestEnv(t)
	user, _ := env.createUser(t, "alice", "alice@example.com")
	env.createTweet(t, user.ID, "old tweet")

	first := env.do(t, http.MethodGet, "/api/v2/tweet?page=1&pageSize=10", "", nil)
	require.Equal(t, http.StatusOK, first.Code)

	env.createTweet(t, user.ID, "brand new tweet")

	second := env.do(t, http.MethodGet, "/api/v2/tweet?page=1&pageSize=10", "", nil)
	require.Equal(t, http.StatusOK, second.Code)
	assert.NotContains(t, second.Body.String(), "brand new tweet")
	assert.Equal(t, first.Body.String(), second.Body.String())

	// Dropping the cache entry makes the new tweet visible.
	env.cache.Delete("tweets:page=1:size=10")
	third := env.do(t, http.MethodGet, "/api/v2/tweet?page=1&pageSize=10", "", nil)
	assert.Contains(t, third.Body.String(), "brand new tweet")
}

func TestListV2DistinctPagesCachedSeparately(t *testing.T) {
	env := newTestEnv(t)
	seedTweets(t, env, 15)

	pageOne := env.do(t, http.MethodGet, "/api/v2/tweet?page=1&pageSize=10", "", nil)
	pageTwo := env.do(t, http.MethodGet, "/api/v2/tweet?page=2&pageSize=10", "", nil)
	require.Equal(t, http.StatusOK, pageOne.Code)
	require.Equal(t, http.StatusOK, pageTwo.Code)
	assert.NotEqual(t, pageOne.Body.String(), pageTwo.Body.String())
}

func TestListV2ClampsLikeV1(t *testing.T) {
	env := newTestEnv(t)
	seedTweets(t, env, 5)

	w := env.do(t, http.MethodGet, "/api/v2/tweet?page=-1&pageSize=0", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var page TweetPage
	decodeJSON(t, w, &page)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.PageSize)
}

func TestGetTweetDetail(t *testing.T) {
	env := newTestEnv(t)
	user, _ := env.createUser(t, "alice", "alice@example.com")
	tweet := env.createTweet(t, user.ID, "hello")

	w := env.do(t, http.MethodGet, fmt.Sprintf("/api/v1/tweet/%d", tweet.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"hello"`)
}

func TestGetTweetDetailIsCached(t *testing.T) {
	env := newTestEnv(t)
	user, _ := env.createUser(t, "alice", "alice@example.com")
	tweet := env.createTweet(t, user.ID, "original title")

	first := env.do(t, http.MethodGet, fmt.Sprintf("/api/v1/tweet/%d", tweet.ID), "", nil)
	require.Equal(t, http.StatusOK, first.Code)

	// A direct DB write does not show through the cached detail.
	require.NoError(t, env.db.Model(tweet).Update("title", "changed title").Error)

	second := env.do(t, http.MethodGet, fmt.Sprintf("/api/v1/tweet/%d", tweet.ID), "", nil)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Contains(t, second.Body.String(), "original title")
}

func TestGetTweetDetailNotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/v1/tweet/9999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
