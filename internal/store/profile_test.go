package store_test

import (
	"github.com/billtrail/backend/internal/models"
	"github.com/billtrail/backend/internal/store"
)

func (suite *StoreSuite) TestProfileDefault() {
	profile, err := suite.store.Profile().Get(suite.ctx)
	suite.Require().Nil(err)
	suite.Equal(models.DefaultProfile(), profile)
}

func (suite *StoreSuite) TestProfileSave() {
	profile := models.DefaultProfile()
	profile.Name = "Asha"
	profile.Language = "ta"
	profile.DarkMode = true

	saved, err := suite.store.Profile().Save(suite.ctx, profile)
	suite.Require().Nil(err)

	stored, err := suite.store.Profile().Get(suite.ctx)
	suite.Require().Nil(err)
	suite.Equal(saved, stored)
	suite.Equal("ta", stored.Language)
	suite.True(stored.DarkMode)
}

func (suite *StoreSuite) TestProfileSaveInvalid() {
	profile := models.DefaultProfile()
	profile.Language = "de"

	_, err := suite.store.Profile().Save(suite.ctx, profile)
	suite.ErrorIs(err, models.ErrLanguageUnsupported)
}

func (suite *StoreSuite) TestProfileMalformed() {
	suite.Require().Nil(suite.db.Save(&models.Collection{Key: models.CollectionProfile, Value: `{"name": 3}`}).Error)

	_, err := suite.store.Profile().Get(suite.ctx)
	suite.ErrorIs(err, store.ErrMalformedCollection)
}

func (suite *StoreSuite) TestFeedbacks() {
	_, err := suite.store.Feedbacks().Add(suite.ctx, models.Feedback{Rating: 0})
	suite.ErrorIs(err, models.ErrRatingOutOfRange)

	feedback, err := suite.store.Feedbacks().Add(suite.ctx, models.Feedback{Rating: 5, Comment: " great "})
	suite.Require().Nil(err)
	suite.Equal("great", feedback.Comment)
	suite.Equal(now, feedback.Date)

	feedbacks, err := suite.store.Feedbacks().List(suite.ctx)
	suite.Require().Nil(err)
	suite.Len(feedbacks, 1)
}
