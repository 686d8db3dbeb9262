package e2e_test

import (
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aicruise/cruise-bot/internal/config"
	"github.com/aicruise/cruise-bot/tests"
	"github.com/rs/zerolog"
)

const (
	testVerifyToken   = "e2e-verify-token"
	testAdminUser     = "captain"
	testAdminPassword = "e2e-secret"
	testAccessToken   = "e2e-access-token"
	testPhoneNumberID = "106540352242922"
)

var (
	testServices        *TestServices
	globalTestContainer sync.Once
	srvcLock            sync.Mutex
)

type TestServices struct {
	Graph    *mockGraphAPI
	Kafka    *mockKafkaServer
	Postgres *tests.TestContainer
	refs     atomic.Int64
	Settings config.Settings
}

func GetTestServices(t *testing.T) *TestServices {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container backed test in short mode")
	}
	srvcLock.Lock()
	globalTestContainer.Do(func() {
		logger := zerolog.New(os.Stdout).Level(zerolog.WarnLevel)
		zerolog.DefaultContextLogger = &logger
		settings := config.Settings{
			Port:                  8080,
			MonPort:               9090,
			WhatsAppAccessToken:   testAccessToken,
			WhatsAppPhoneNumberID: testPhoneNumberID,
			WebhookVerifyToken:    testVerifyToken,
			AdminUsername:         testAdminUser,
			AdminPassword:         testAdminPassword,
			KnowledgeCacheTTL:     time.Second,
			ConversationTopic:     "test.cruisebot.conversations",
		}
		settings.ApplyDefaults()

		// Setup services
		testServices = &TestServices{
			Settings: settings,
		}
		var wg sync.WaitGroup
		waitForSetup(t, &wg, func(t *testing.T) {
			graph := newMockGraphAPI()
			testServices.Graph = graph
			testServices.Settings.WhatsAppAPIURL = graph.URL() + "/v19.0"
		})
		waitForSetup(t, &wg, func(t *testing.T) {
			kafka := setupMockKafkaServer(t)
			testServices.Kafka = kafka
			testServices.Settings.KafkaBrokers = kafka.GetBrokerAddress(t)
		})
		waitForSetup(t, &wg, func(t *testing.T) {
			db := tests.SetupTestContainer(t)
			testServices.Postgres = db
			testServices.Settings.DB = db.Settings
		})
		wg.Wait()
	})
	srvcLock.Unlock()
	testServices.TeardownIfLastTest(t)
	testServices.Postgres.TeardownIfLastTest(t)
	return testServices
}

func (tc *TestServices) TeardownIfLastTest(t *testing.T) {
	tc.refs.Add(1)
	t.Cleanup(func() {
		refs := tc.refs.Add(-1)
		if refs != 0 {
			return
		}
		tc.Graph.Close()
		if err := tc.Kafka.Close(); err != nil {
			t.Logf("Error closing Kafka: %v", err)
		}
		// reset the onceSetup to allow the next test to run if this one is closed
		globalTestContainer = sync.Once{}
	})
}

func waitForSetup(t *testing.T, wg *sync.WaitGroup, setup func(*testing.T)) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		setup(t)
	}()
}
