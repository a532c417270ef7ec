package results

import (
	"time"

	"github.com/huangsam/pareval/internal/contract"
	"github.com/huangsam/pareval/schema"
	"github.com/stretchr/testify/mock"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetResultStore implements the StoreManager interface.
func (m *MockStoreManager) GetResultStore() contract.ResultStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.ResultStore)
	return store
}

// MockResultStore is a mock implementation of ResultStore for testing.
type MockResultStore struct {
	mock.Mock
}

var _ contract.ResultStore = &MockResultStore{} // Compile-time check

// BeginEvaluation implements the ResultStore interface.
func (m *MockResultStore) BeginEvaluation(startTime time.Time, configParams map[string]any) (int64, error) {
	args := m.Called(startTime, configParams)
	return args.Get(0).(int64), args.Error(1)
}

// EndEvaluation implements the ResultStore interface.
func (m *MockResultStore) EndEvaluation(evaluationID int64, endTime time.Time, totalRuns int) error {
	args := m.Called(evaluationID, endTime, totalRuns)
	return args.Error(0)
}

// RecordRunScore implements the ResultStore interface.
func (m *MockResultStore) RecordRunScore(evaluationID int64, score schema.RunScore) error {
	args := m.Called(evaluationID, score)
	return args.Error(0)
}

// ListEvaluations implements the ResultStore interface.
func (m *MockResultStore) ListEvaluations(limit int) ([]schema.EvaluationRecord, error) {
	args := m.Called(limit)
	records, _ := args.Get(0).([]schema.EvaluationRecord)
	return records, args.Error(1)
}

// ListRunScores implements the ResultStore interface.
func (m *MockResultStore) ListRunScores(evaluationID int64) ([]schema.RunScore, error) {
	args := m.Called(evaluationID)
	scores, _ := args.Get(0).([]schema.RunScore)
	return scores, args.Error(1)
}

// GetStatus implements the ResultStore interface.
func (m *MockResultStore) GetStatus() (schema.ResultsStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.ResultsStatus), args.Error(1)
}

// Clear implements the ResultStore interface.
func (m *MockResultStore) Clear() error {
	args := m.Called()
	return args.Error(0)
}

// Close implements the ResultStore interface.
func (m *MockResultStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
