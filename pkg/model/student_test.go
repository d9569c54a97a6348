package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStudent_DefaultScores(t *testing.T) {
	s := NewStudent("s1", "Martin", "Lea", GenderFemale)
	assert.Equal(t, defaultScore, s.COM())
	assert.Equal(t, defaultScore, s.TRA())
	assert.Equal(t, defaultScore, s.PART())
	assert.Equal(t, defaultScore, s.ABS())
}

func TestStudent_SetScoresClamp(t *testing.T) {
	s := NewStudent("s1", "Martin", "Lea", GenderFemale)
	s.SetCOM(7)
	s.SetTRA(-3)
	assert.Equal(t, 5.0, s.COM())
	assert.Equal(t, 0.0, s.TRA())
}

func TestStudent_ExplicitZeroIsNotDefault(t *testing.T) {
	s := NewStudent("s1", "Martin", "Lea", GenderFemale)
	s.SetPART(0)
	assert.Equal(t, 0.0, s.PART())
}

func TestStudent_IsHead(t *testing.T) {
	s := NewStudent("s1", "Martin", "Lea", GenderFemale)
	s.SetCOM(4)
	assert.True(t, s.IsHead())

	s2 := NewStudent("s2", "Durand", "Tom", GenderMale)
	s2.SetCOM(3.5)
	s2.SetTRA(3.5)
	s2.SetPART(3.5)
	assert.True(t, s2.IsHead())

	s3 := NewStudent("s3", "Petit", "Zoe", GenderFemale)
	assert.False(t, s3.IsHead())
}

func TestStudent_IsLowTier(t *testing.T) {
	s := NewStudent("s1", "Martin", "Lea", GenderFemale)
	s.SetCOM(1)
	assert.True(t, s.IsLowTier())

	s2 := NewStudent("s2", "Durand", "Tom", GenderMale)
	assert.False(t, s2.IsLowTier())
}

func TestStudent_IsFixed(t *testing.T) {
	s := NewStudent("s1", "Martin", "Lea", GenderFemale)
	assert.False(t, s.IsFixed())
	s.MobilityFlag = Fixed
	assert.True(t, s.IsFixed())
}

func TestStudent_DisplayName(t *testing.T) {
	s := NewStudent("s1", "Martin", "Lea", GenderFemale)
	assert.Equal(t, "Lea Martin", s.DisplayName())
}
