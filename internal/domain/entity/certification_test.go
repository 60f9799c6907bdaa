package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCertification(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	cert := NewCertification(5, "Physics", 85, now)

	require.NotNil(t, cert)
	assert.Equal(t, uint(5), cert.UserID)
	assert.Equal(t, "Physics", cert.Subject)
	assert.Equal(t, 85, cert.Score)
	assert.Equal(t, now, cert.IssuedDate)
	assert.Equal(t, now.AddDate(0, 0, 365), cert.ExpiryDate, "срок действия — ровно 365 дней")
	assert.Equal(t, CertificationActive, cert.Status)
}

func TestCertification_IsExpired(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cert := NewCertification(5, "Physics", 85, issued)

	assert.False(t, cert.IsExpired(issued), "только что выданная не истекла")
	assert.False(t, cert.IsExpired(cert.ExpiryDate.Add(-time.Second)), "за секунду до истечения активна")
	assert.True(t, cert.IsExpired(cert.ExpiryDate), "в момент истечения уже не активна")
	assert.True(t, cert.IsExpired(cert.ExpiryDate.Add(time.Hour)))
}

func TestCertification_EffectiveStatus_IgnoresStoredColumn(t *testing.T) {
	now := time.Now()

	// В колонке сохранено active, но срок уже вышел: статус вычисляется
	// по дате, фонового процесса истечения нет
	stale := &Certification{
		ExpiryDate: now.Add(-time.Hour),
		Status:     CertificationActive,
	}
	assert.Equal(t, CertificationExpired, stale.EffectiveStatus(now))

	active := &Certification{
		ExpiryDate: now.Add(time.Hour),
		Status:     CertificationExpired, // даже с некорректной колонкой
	}
	assert.Equal(t, CertificationActive, active.EffectiveStatus(now))
}
