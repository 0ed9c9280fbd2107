package services

import (
	"context"
	"errors"
	"log"
	"sort"
	"strconv"
	"time"

	"pairwave_server/models"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// CallRecordService is the persisted call ledger: one record per paired
// session, created open (no duration) at match time and closed at most once
// when a participant reports the elapsed seconds.
type CallRecordService struct {
	Dynamo *DynamoService
}

// CreateCallRecord persists a new open record for a session on channelName.
func (s *CallRecordService) CreateCallRecord(ctx context.Context, userA, userB, channelName string) error {
	record := models.CallRecord{
		CallID:       uuid.NewString(),
		Participants: []string{userA, userB},
		ChannelName:  channelName,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	return s.Dynamo.PutItem(ctx, models.CallRecordsTable, record)
}

// FindOpenCallForParticipant returns the most recently created record that
// still has no duration and names userID as a participant, or nil.
func (s *CallRecordService) FindOpenCallForParticipant(ctx context.Context, userID string) (*models.CallRecord, error) {
	var records []models.CallRecord
	err := s.Dynamo.ScanItems(
		ctx,
		models.CallRecordsTable,
		"attribute_not_exists(#d) AND contains(#p, :uid)",
		map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
		map[string]string{
			"#d": "duration",
			"#p": "participants",
		},
		&records,
	)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	sort.Slice(records, func(i, j int) bool {
		ti, errI := time.Parse(time.RFC3339, records[i].CreatedAt)
		tj, errJ := time.Parse(time.RFC3339, records[j].CreatedAt)
		if errI != nil || errJ != nil {
			return records[i].CreatedAt > records[j].CreatedAt
		}
		return ti.After(tj)
	})
	return &records[0], nil
}

// SetCallDuration closes a record. The condition keeps the duration
// write-once: the second participant to report simply loses the race.
func (s *CallRecordService) SetCallDuration(ctx context.Context, callID string, seconds int) error {
	key := map[string]types.AttributeValue{
		"callId": &types.AttributeValueMemberS{Value: callID},
	}
	err := s.Dynamo.UpdateItemWithCondition(
		ctx,
		models.CallRecordsTable,
		"SET #d = :d",
		"attribute_not_exists(#d)",
		key,
		map[string]types.AttributeValue{
			":d": &types.AttributeValueMemberN{Value: strconv.Itoa(seconds)},
		},
		map[string]string{"#d": "duration"},
	)

	var conditionFailed *types.ConditionalCheckFailedException
	if errors.As(err, &conditionFailed) {
		log.Printf("Call %s already has a duration, skipping update", callID)
		return nil
	}
	return err
}

// GetCallsForUser returns every record naming userID, newest first.
func (s *CallRecordService) GetCallsForUser(ctx context.Context, userID string) ([]models.CallRecord, error) {
	var records []models.CallRecord
	err := s.Dynamo.ScanItems(
		ctx,
		models.CallRecordsTable,
		"contains(#p, :uid)",
		map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
		map[string]string{"#p": "participants"},
		&records,
	)
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt > records[j].CreatedAt
	})
	return records, nil
}
