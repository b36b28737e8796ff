package repository

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"clinic-scheduler/internal/domain/entity"
	"clinic-scheduler/internal/infrastructure/storage"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoStore(t *testing.T) (*storage.Store, string) {
	t.Helper()
	dir := t.TempDir()
	log := logrus.New()
	log.SetOutput(io.Discard)
	store, err := storage.NewStore(dir, log)
	require.NoError(t, err)
	return store, dir
}

func readFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return string(data)
}

func TestPatientDocumentShape(t *testing.T) {
	store, dir := newRepoStore(t)
	repo, err := NewPatientRepository(store, "pacientes.json")
	require.NoError(t, err)

	patient := entity.Patient{Name: "Maria Silva", CPF: "12345678901", Phone: "+55 (11) 98765-4321"}
	require.NoError(t, repo.Create(patient))

	want := `{"pacientes":[{"nome":"Maria Silva","cpf":"12345678901","telefone":"+55 (11) 98765-4321"}]}`
	assert.Equal(t, want, readFile(t, dir, "pacientes.json"))

	// Reload through a fresh repository.
	reloaded, err := NewPatientRepository(store, "pacientes.json")
	require.NoError(t, err)
	found := reloaded.FindByCPF("12345678901")
	require.NotNil(t, found)
	assert.Equal(t, "Maria Silva", found.Name)
}

func TestAppointmentDocumentShape(t *testing.T) {
	store, dir := newRepoStore(t)
	repo, err := NewAppointmentRepository(store, "agendamentos.json")
	require.NoError(t, err)

	require.NoError(t, repo.Create(entity.Appointment{CPF: "12345678901", Name: "Maria Silva", Date: "10/03/2025 08:00"}))

	want := `{"agendamentos":[{"cpf":"12345678901","nome":"Maria Silva","data":"10/03/2025 08:00"}]}`
	assert.Equal(t, want, readFile(t, dir, "agendamentos.json"))
}

func TestScheduleDocumentIsBareMap(t *testing.T) {
	store, dir := newRepoStore(t)
	repo, err := NewScheduleRepository(store, "horarios.json")
	require.NoError(t, err)

	inventory := repo.Inventory()
	inventory.AddDay("10/03/2025")
	inventory.AddSlot("10/03/2025", "08:00")
	require.NoError(t, repo.Save())

	// Unlike the other documents there is no wrapping key.
	assert.Equal(t, `{"10/03/2025":["08:00"]}`, readFile(t, dir, "horarios.json"))

	reloaded, err := NewScheduleRepository(store, "horarios.json")
	require.NoError(t, err)
	assert.True(t, reloaded.Inventory().HasSlot("10/03/2025", "08:00"))
}

func TestAppointmentDeleteRollsBackOnMiss(t *testing.T) {
	store, _ := newRepoStore(t)
	repo, err := NewAppointmentRepository(store, "agendamentos.json")
	require.NoError(t, err)
	require.NoError(t, repo.Create(entity.Appointment{CPF: "12345678901", Name: "Maria", Date: "10/03/2025 08:00"}))

	removed, err := repo.Delete("12345678901", "10/03/2025 09:00")
	require.NoError(t, err)
	assert.False(t, removed, "deleting an absent entry must report false")
	assert.Len(t, repo.All(), 1, "ledger must be unchanged on a miss")
}

func TestFAQRepositoryIndexBounds(t *testing.T) {
	store, _ := newRepoStore(t)
	repo, err := NewFAQRepository(store, "faq.json")
	require.NoError(t, err)
	require.NoError(t, repo.Create(entity.FAQEntry{Question: "q", Answer: "a"}))

	_, ok := repo.Get(-1)
	assert.False(t, ok, "negative index must miss")
	_, ok = repo.Get(1)
	assert.False(t, ok, "out-of-range index must miss")

	assert.True(t, repo.QuestionExists("Q"), "question match must be case-insensitive")
	assert.Error(t, repo.Remove(3), "out-of-range removal must fail")
}
