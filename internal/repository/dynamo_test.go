package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeDynamo struct {
	items map[string]map[string]types.AttributeValue
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: make(map[string]map[string]types.AttributeValue)}
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	key := in.Key["key"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[aws.ToString(in.TableName)+"/"+key]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	key := in.Item["key"].(*types.AttributeValueMemberS).Value
	f.items[aws.ToString(in.TableName)+"/"+key] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func TestDynamoSlot_GetPut(t *testing.T) {
	ctx := context.Background()
	slot := NewDynamoSlot(newFakeDynamo(), "NotesState")

	if _, err := slot.Get(ctx, "k"); !errors.Is(err, ErrSlotEmpty) {
		t.Fatalf("expected ErrSlotEmpty, got %v", err)
	}

	if err := slot.Put(ctx, "k", []byte(`{"notes":[]}`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := slot.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != `{"notes":[]}` {
		t.Errorf("got %q", got)
	}
}
