// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: occkernel/v1/occkernel.proto

package occkernelv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Pdo struct {
	state                 protoimpl.MessageState `protogen:"open.v1"`
	PdoId                 string                 `protobuf:"bytes,1,opt,name=pdo_id,json=pdoId,proto3" json:"pdo_id,omitempty"`
	TierRequired          int32                  `protobuf:"varint,2,opt,name=tier_required,json=tierRequired,proto3" json:"tier_required,omitempty"`
	State                 string                 `protobuf:"bytes,3,opt,name=state,proto3" json:"state,omitempty"`
	OriginatingDecisionId string                 `protobuf:"bytes,4,opt,name=originating_decision_id,json=originatingDecisionId,proto3" json:"originating_decision_id,omitempty"`
	OriginatingActorId    string                 `protobuf:"bytes,5,opt,name=originating_actor_id,json=originatingActorId,proto3" json:"originating_actor_id,omitempty"`
	ValueAtRisk           int64                  `protobuf:"varint,6,opt,name=value_at_risk,json=valueAtRisk,proto3" json:"value_at_risk,omitempty"`
	Payload               []byte                 `protobuf:"bytes,7,opt,name=payload,proto3" json:"payload,omitempty"`
	EnqueuedSequence      uint64                 `protobuf:"varint,8,opt,name=enqueued_sequence,json=enqueuedSequence,proto3" json:"enqueued_sequence,omitempty"`
	ClaimedBy             string                 `protobuf:"bytes,9,opt,name=claimed_by,json=claimedBy,proto3" json:"claimed_by,omitempty"`
	Outcome               string                 `protobuf:"bytes,10,opt,name=outcome,proto3" json:"outcome,omitempty"`
	TtlDeadline           string                 `protobuf:"bytes,11,opt,name=ttl_deadline,json=ttlDeadline,proto3" json:"ttl_deadline,omitempty"`
	CreatedAt             string                 `protobuf:"bytes,12,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields         protoimpl.UnknownFields
	sizeCache             protoimpl.SizeCache
}

func (x *Pdo) Reset() {
	*x = Pdo{}
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Pdo) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Pdo) ProtoMessage() {}

func (x *Pdo) ProtoReflect() protoreflect.Message {
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Pdo.ProtoReflect.Descriptor instead.
func (*Pdo) Descriptor() ([]byte, []int) {
	return file_occkernel_v1_occkernel_proto_rawDescGZIP(), []int{0}
}

func (x *Pdo) GetPdoId() string {
	if x != nil {
		return x.PdoId
	}
	return ""
}

func (x *Pdo) GetTierRequired() int32 {
	if x != nil {
		return x.TierRequired
	}
	return 0
}

func (x *Pdo) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

func (x *Pdo) GetOriginatingDecisionId() string {
	if x != nil {
		return x.OriginatingDecisionId
	}
	return ""
}

func (x *Pdo) GetOriginatingActorId() string {
	if x != nil {
		return x.OriginatingActorId
	}
	return ""
}

func (x *Pdo) GetValueAtRisk() int64 {
	if x != nil {
		return x.ValueAtRisk
	}
	return 0
}

func (x *Pdo) GetPayload() []byte {
	if x != nil {
		return x.Payload
	}
	return nil
}

func (x *Pdo) GetEnqueuedSequence() uint64 {
	if x != nil {
		return x.EnqueuedSequence
	}
	return 0
}

func (x *Pdo) GetClaimedBy() string {
	if x != nil {
		return x.ClaimedBy
	}
	return ""
}

func (x *Pdo) GetOutcome() string {
	if x != nil {
		return x.Outcome
	}
	return ""
}

func (x *Pdo) GetTtlDeadline() string {
	if x != nil {
		return x.TtlDeadline
	}
	return ""
}

func (x *Pdo) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type CreatePdoRequest struct {
	state                 protoimpl.MessageState `protogen:"open.v1"`
	TierRequired          int32                  `protobuf:"varint,1,opt,name=tier_required,json=tierRequired,proto3" json:"tier_required,omitempty"`
	OriginatingDecisionId string                 `protobuf:"bytes,2,opt,name=originating_decision_id,json=originatingDecisionId,proto3" json:"originating_decision_id,omitempty"`
	OriginatingActorId    string                 `protobuf:"bytes,3,opt,name=originating_actor_id,json=originatingActorId,proto3" json:"originating_actor_id,omitempty"`
	ValueAtRisk           int64                  `protobuf:"varint,4,opt,name=value_at_risk,json=valueAtRisk,proto3" json:"value_at_risk,omitempty"`
	Payload               []byte                 `protobuf:"bytes,5,opt,name=payload,proto3" json:"payload,omitempty"`
	Ttl                   string                 `protobuf:"bytes,6,opt,name=ttl,proto3" json:"ttl,omitempty"` // Go duration string, empty for the configured default
	unknownFields         protoimpl.UnknownFields
	sizeCache             protoimpl.SizeCache
}

func (x *CreatePdoRequest) Reset() {
	*x = CreatePdoRequest{}
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreatePdoRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreatePdoRequest) ProtoMessage() {}

func (x *CreatePdoRequest) ProtoReflect() protoreflect.Message {
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreatePdoRequest.ProtoReflect.Descriptor instead.
func (*CreatePdoRequest) Descriptor() ([]byte, []int) {
	return file_occkernel_v1_occkernel_proto_rawDescGZIP(), []int{1}
}

func (x *CreatePdoRequest) GetTierRequired() int32 {
	if x != nil {
		return x.TierRequired
	}
	return 0
}

func (x *CreatePdoRequest) GetOriginatingDecisionId() string {
	if x != nil {
		return x.OriginatingDecisionId
	}
	return ""
}

func (x *CreatePdoRequest) GetOriginatingActorId() string {
	if x != nil {
		return x.OriginatingActorId
	}
	return ""
}

func (x *CreatePdoRequest) GetValueAtRisk() int64 {
	if x != nil {
		return x.ValueAtRisk
	}
	return 0
}

func (x *CreatePdoRequest) GetPayload() []byte {
	if x != nil {
		return x.Payload
	}
	return nil
}

func (x *CreatePdoRequest) GetTtl() string {
	if x != nil {
		return x.Ttl
	}
	return ""
}

type CreatePdoResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Pdo           *Pdo                   `protobuf:"bytes,1,opt,name=pdo,proto3" json:"pdo,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreatePdoResponse) Reset() {
	*x = CreatePdoResponse{}
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreatePdoResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreatePdoResponse) ProtoMessage() {}

func (x *CreatePdoResponse) ProtoReflect() protoreflect.Message {
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreatePdoResponse.ProtoReflect.Descriptor instead.
func (*CreatePdoResponse) Descriptor() ([]byte, []int) {
	return file_occkernel_v1_occkernel_proto_rawDescGZIP(), []int{2}
}

func (x *CreatePdoResponse) GetPdo() *Pdo {
	if x != nil {
		return x.Pdo
	}
	return nil
}

type ClaimRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PdoId         string                 `protobuf:"bytes,1,opt,name=pdo_id,json=pdoId,proto3" json:"pdo_id,omitempty"`
	OperatorId    string                 `protobuf:"bytes,2,opt,name=operator_id,json=operatorId,proto3" json:"operator_id,omitempty"`
	Credential    string                 `protobuf:"bytes,3,opt,name=credential,proto3" json:"credential,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClaimRequest) Reset() {
	*x = ClaimRequest{}
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClaimRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClaimRequest) ProtoMessage() {}

func (x *ClaimRequest) ProtoReflect() protoreflect.Message {
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClaimRequest.ProtoReflect.Descriptor instead.
func (*ClaimRequest) Descriptor() ([]byte, []int) {
	return file_occkernel_v1_occkernel_proto_rawDescGZIP(), []int{3}
}

func (x *ClaimRequest) GetPdoId() string {
	if x != nil {
		return x.PdoId
	}
	return ""
}

func (x *ClaimRequest) GetOperatorId() string {
	if x != nil {
		return x.OperatorId
	}
	return ""
}

func (x *ClaimRequest) GetCredential() string {
	if x != nil {
		return x.Credential
	}
	return ""
}

type ClaimResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Pdo           *Pdo                   `protobuf:"bytes,1,opt,name=pdo,proto3" json:"pdo,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClaimResponse) Reset() {
	*x = ClaimResponse{}
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClaimResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClaimResponse) ProtoMessage() {}

func (x *ClaimResponse) ProtoReflect() protoreflect.Message {
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClaimResponse.ProtoReflect.Descriptor instead.
func (*ClaimResponse) Descriptor() ([]byte, []int) {
	return file_occkernel_v1_occkernel_proto_rawDescGZIP(), []int{4}
}

func (x *ClaimResponse) GetPdo() *Pdo {
	if x != nil {
		return x.Pdo
	}
	return nil
}

type CommitRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PdoId         string                 `protobuf:"bytes,1,opt,name=pdo_id,json=pdoId,proto3" json:"pdo_id,omitempty"`
	OperatorId    string                 `protobuf:"bytes,2,opt,name=operator_id,json=operatorId,proto3" json:"operator_id,omitempty"`
	Credential    string                 `protobuf:"bytes,3,opt,name=credential,proto3" json:"credential,omitempty"`
	TierUsed      int32                  `protobuf:"varint,4,opt,name=tier_used,json=tierUsed,proto3" json:"tier_used,omitempty"`
	Outcome       string                 `protobuf:"bytes,5,opt,name=outcome,proto3" json:"outcome,omitempty"`
	Justification string                 `protobuf:"bytes,6,opt,name=justification,proto3" json:"justification,omitempty"`
	IncidentId    string                 `protobuf:"bytes,7,opt,name=incident_id,json=incidentId,proto3" json:"incident_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CommitRequest) Reset() {
	*x = CommitRequest{}
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CommitRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CommitRequest) ProtoMessage() {}

func (x *CommitRequest) ProtoReflect() protoreflect.Message {
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CommitRequest.ProtoReflect.Descriptor instead.
func (*CommitRequest) Descriptor() ([]byte, []int) {
	return file_occkernel_v1_occkernel_proto_rawDescGZIP(), []int{5}
}

func (x *CommitRequest) GetPdoId() string {
	if x != nil {
		return x.PdoId
	}
	return ""
}

func (x *CommitRequest) GetOperatorId() string {
	if x != nil {
		return x.OperatorId
	}
	return ""
}

func (x *CommitRequest) GetCredential() string {
	if x != nil {
		return x.Credential
	}
	return ""
}

func (x *CommitRequest) GetTierUsed() int32 {
	if x != nil {
		return x.TierUsed
	}
	return 0
}

func (x *CommitRequest) GetOutcome() string {
	if x != nil {
		return x.Outcome
	}
	return ""
}

func (x *CommitRequest) GetJustification() string {
	if x != nil {
		return x.Justification
	}
	return ""
}

func (x *CommitRequest) GetIncidentId() string {
	if x != nil {
		return x.IncidentId
	}
	return ""
}

type CommitResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Allowed       bool                   `protobuf:"varint,1,opt,name=allowed,proto3" json:"allowed,omitempty"`
	DenialCode    string                 `protobuf:"bytes,2,opt,name=denial_code,json=denialCode,proto3" json:"denial_code,omitempty"`
	DenialReason  string                 `protobuf:"bytes,3,opt,name=denial_reason,json=denialReason,proto3" json:"denial_reason,omitempty"`
	Pdo           *Pdo                   `protobuf:"bytes,4,opt,name=pdo,proto3" json:"pdo,omitempty"`
	EntrySequence uint64                 `protobuf:"varint,5,opt,name=entry_sequence,json=entrySequence,proto3" json:"entry_sequence,omitempty"`
	EntryHash     string                 `protobuf:"bytes,6,opt,name=entry_hash,json=entryHash,proto3" json:"entry_hash,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CommitResponse) Reset() {
	*x = CommitResponse{}
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CommitResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CommitResponse) ProtoMessage() {}

func (x *CommitResponse) ProtoReflect() protoreflect.Message {
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CommitResponse.ProtoReflect.Descriptor instead.
func (*CommitResponse) Descriptor() ([]byte, []int) {
	return file_occkernel_v1_occkernel_proto_rawDescGZIP(), []int{6}
}

func (x *CommitResponse) GetAllowed() bool {
	if x != nil {
		return x.Allowed
	}
	return false
}

func (x *CommitResponse) GetDenialCode() string {
	if x != nil {
		return x.DenialCode
	}
	return ""
}

func (x *CommitResponse) GetDenialReason() string {
	if x != nil {
		return x.DenialReason
	}
	return ""
}

func (x *CommitResponse) GetPdo() *Pdo {
	if x != nil {
		return x.Pdo
	}
	return nil
}

func (x *CommitResponse) GetEntrySequence() uint64 {
	if x != nil {
		return x.EntrySequence
	}
	return 0
}

func (x *CommitResponse) GetEntryHash() string {
	if x != nil {
		return x.EntryHash
	}
	return ""
}

type WithdrawRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PdoId         string                 `protobuf:"bytes,1,opt,name=pdo_id,json=pdoId,proto3" json:"pdo_id,omitempty"`
	ActorId       string                 `protobuf:"bytes,2,opt,name=actor_id,json=actorId,proto3" json:"actor_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WithdrawRequest) Reset() {
	*x = WithdrawRequest{}
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WithdrawRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WithdrawRequest) ProtoMessage() {}

func (x *WithdrawRequest) ProtoReflect() protoreflect.Message {
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WithdrawRequest.ProtoReflect.Descriptor instead.
func (*WithdrawRequest) Descriptor() ([]byte, []int) {
	return file_occkernel_v1_occkernel_proto_rawDescGZIP(), []int{7}
}

func (x *WithdrawRequest) GetPdoId() string {
	if x != nil {
		return x.PdoId
	}
	return ""
}

func (x *WithdrawRequest) GetActorId() string {
	if x != nil {
		return x.ActorId
	}
	return ""
}

type WithdrawResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Pdo           *Pdo                   `protobuf:"bytes,1,opt,name=pdo,proto3" json:"pdo,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WithdrawResponse) Reset() {
	*x = WithdrawResponse{}
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WithdrawResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WithdrawResponse) ProtoMessage() {}

func (x *WithdrawResponse) ProtoReflect() protoreflect.Message {
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WithdrawResponse.ProtoReflect.Descriptor instead.
func (*WithdrawResponse) Descriptor() ([]byte, []int) {
	return file_occkernel_v1_occkernel_proto_rawDescGZIP(), []int{8}
}

func (x *WithdrawResponse) GetPdo() *Pdo {
	if x != nil {
		return x.Pdo
	}
	return nil
}

type ExecuteRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PdoId         string                 `protobuf:"bytes,1,opt,name=pdo_id,json=pdoId,proto3" json:"pdo_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExecuteRequest) Reset() {
	*x = ExecuteRequest{}
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExecuteRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExecuteRequest) ProtoMessage() {}

func (x *ExecuteRequest) ProtoReflect() protoreflect.Message {
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExecuteRequest.ProtoReflect.Descriptor instead.
func (*ExecuteRequest) Descriptor() ([]byte, []int) {
	return file_occkernel_v1_occkernel_proto_rawDescGZIP(), []int{9}
}

func (x *ExecuteRequest) GetPdoId() string {
	if x != nil {
		return x.PdoId
	}
	return ""
}

type ExecuteResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Pdo           *Pdo                   `protobuf:"bytes,1,opt,name=pdo,proto3" json:"pdo,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExecuteResponse) Reset() {
	*x = ExecuteResponse{}
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExecuteResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExecuteResponse) ProtoMessage() {}

func (x *ExecuteResponse) ProtoReflect() protoreflect.Message {
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExecuteResponse.ProtoReflect.Descriptor instead.
func (*ExecuteResponse) Descriptor() ([]byte, []int) {
	return file_occkernel_v1_occkernel_proto_rawDescGZIP(), []int{10}
}

func (x *ExecuteResponse) GetPdo() *Pdo {
	if x != nil {
		return x.Pdo
	}
	return nil
}

type GetPdoRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PdoId         string                 `protobuf:"bytes,1,opt,name=pdo_id,json=pdoId,proto3" json:"pdo_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPdoRequest) Reset() {
	*x = GetPdoRequest{}
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPdoRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPdoRequest) ProtoMessage() {}

func (x *GetPdoRequest) ProtoReflect() protoreflect.Message {
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPdoRequest.ProtoReflect.Descriptor instead.
func (*GetPdoRequest) Descriptor() ([]byte, []int) {
	return file_occkernel_v1_occkernel_proto_rawDescGZIP(), []int{11}
}

func (x *GetPdoRequest) GetPdoId() string {
	if x != nil {
		return x.PdoId
	}
	return ""
}

type GetPdoResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Pdo           *Pdo                   `protobuf:"bytes,1,opt,name=pdo,proto3" json:"pdo,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPdoResponse) Reset() {
	*x = GetPdoResponse{}
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPdoResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPdoResponse) ProtoMessage() {}

func (x *GetPdoResponse) ProtoReflect() protoreflect.Message {
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPdoResponse.ProtoReflect.Descriptor instead.
func (*GetPdoResponse) Descriptor() ([]byte, []int) {
	return file_occkernel_v1_occkernel_proto_rawDescGZIP(), []int{12}
}

func (x *GetPdoResponse) GetPdo() *Pdo {
	if x != nil {
		return x.Pdo
	}
	return nil
}

type ListQueueRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListQueueRequest) Reset() {
	*x = ListQueueRequest{}
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListQueueRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListQueueRequest) ProtoMessage() {}

func (x *ListQueueRequest) ProtoReflect() protoreflect.Message {
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListQueueRequest.ProtoReflect.Descriptor instead.
func (*ListQueueRequest) Descriptor() ([]byte, []int) {
	return file_occkernel_v1_occkernel_proto_rawDescGZIP(), []int{13}
}

type QueueItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PdoId         string                 `protobuf:"bytes,1,opt,name=pdo_id,json=pdoId,proto3" json:"pdo_id,omitempty"`
	Tier          int32                  `protobuf:"varint,2,opt,name=tier,proto3" json:"tier,omitempty"`
	Sequence      uint64                 `protobuf:"varint,3,opt,name=sequence,proto3" json:"sequence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *QueueItem) Reset() {
	*x = QueueItem{}
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *QueueItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*QueueItem) ProtoMessage() {}

func (x *QueueItem) ProtoReflect() protoreflect.Message {
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use QueueItem.ProtoReflect.Descriptor instead.
func (*QueueItem) Descriptor() ([]byte, []int) {
	return file_occkernel_v1_occkernel_proto_rawDescGZIP(), []int{14}
}

func (x *QueueItem) GetPdoId() string {
	if x != nil {
		return x.PdoId
	}
	return ""
}

func (x *QueueItem) GetTier() int32 {
	if x != nil {
		return x.Tier
	}
	return 0
}

func (x *QueueItem) GetSequence() uint64 {
	if x != nil {
		return x.Sequence
	}
	return 0
}

type ListQueueResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Items         []*QueueItem           `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListQueueResponse) Reset() {
	*x = ListQueueResponse{}
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListQueueResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListQueueResponse) ProtoMessage() {}

func (x *ListQueueResponse) ProtoReflect() protoreflect.Message {
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListQueueResponse.ProtoReflect.Descriptor instead.
func (*ListQueueResponse) Descriptor() ([]byte, []int) {
	return file_occkernel_v1_occkernel_proto_rawDescGZIP(), []int{15}
}

func (x *ListQueueResponse) GetItems() []*QueueItem {
	if x != nil {
		return x.Items
	}
	return nil
}

type ExportAuditRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	From          uint64                 `protobuf:"varint,1,opt,name=from,proto3" json:"from,omitempty"`
	To            uint64                 `protobuf:"varint,2,opt,name=to,proto3" json:"to,omitempty"` // 0 means the chain tail
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportAuditRequest) Reset() {
	*x = ExportAuditRequest{}
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportAuditRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportAuditRequest) ProtoMessage() {}

func (x *ExportAuditRequest) ProtoReflect() protoreflect.Message {
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportAuditRequest.ProtoReflect.Descriptor instead.
func (*ExportAuditRequest) Descriptor() ([]byte, []int) {
	return file_occkernel_v1_occkernel_proto_rawDescGZIP(), []int{16}
}

func (x *ExportAuditRequest) GetFrom() uint64 {
	if x != nil {
		return x.From
	}
	return 0
}

func (x *ExportAuditRequest) GetTo() uint64 {
	if x != nil {
		return x.To
	}
	return 0
}

type ExportAuditResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ExportJson    []byte                 `protobuf:"bytes,1,opt,name=export_json,json=exportJson,proto3" json:"export_json,omitempty"`
	AnchorHash    string                 `protobuf:"bytes,2,opt,name=anchor_hash,json=anchorHash,proto3" json:"anchor_hash,omitempty"`
	TailHash      string                 `protobuf:"bytes,3,opt,name=tail_hash,json=tailHash,proto3" json:"tail_hash,omitempty"`
	Entries       uint64                 `protobuf:"varint,4,opt,name=entries,proto3" json:"entries,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportAuditResponse) Reset() {
	*x = ExportAuditResponse{}
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportAuditResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportAuditResponse) ProtoMessage() {}

func (x *ExportAuditResponse) ProtoReflect() protoreflect.Message {
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportAuditResponse.ProtoReflect.Descriptor instead.
func (*ExportAuditResponse) Descriptor() ([]byte, []int) {
	return file_occkernel_v1_occkernel_proto_rawDescGZIP(), []int{17}
}

func (x *ExportAuditResponse) GetExportJson() []byte {
	if x != nil {
		return x.ExportJson
	}
	return nil
}

func (x *ExportAuditResponse) GetAnchorHash() string {
	if x != nil {
		return x.AnchorHash
	}
	return ""
}

func (x *ExportAuditResponse) GetTailHash() string {
	if x != nil {
		return x.TailHash
	}
	return ""
}

func (x *ExportAuditResponse) GetEntries() uint64 {
	if x != nil {
		return x.Entries
	}
	return 0
}

type KillSwitchRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OperatorId    string                 `protobuf:"bytes,1,opt,name=operator_id,json=operatorId,proto3" json:"operator_id,omitempty"`
	Credential    string                 `protobuf:"bytes,2,opt,name=credential,proto3" json:"credential,omitempty"`
	Engage        bool                   `protobuf:"varint,3,opt,name=engage,proto3" json:"engage,omitempty"`
	Reason        string                 `protobuf:"bytes,4,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *KillSwitchRequest) Reset() {
	*x = KillSwitchRequest{}
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *KillSwitchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*KillSwitchRequest) ProtoMessage() {}

func (x *KillSwitchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use KillSwitchRequest.ProtoReflect.Descriptor instead.
func (*KillSwitchRequest) Descriptor() ([]byte, []int) {
	return file_occkernel_v1_occkernel_proto_rawDescGZIP(), []int{18}
}

func (x *KillSwitchRequest) GetOperatorId() string {
	if x != nil {
		return x.OperatorId
	}
	return ""
}

func (x *KillSwitchRequest) GetCredential() string {
	if x != nil {
		return x.Credential
	}
	return ""
}

func (x *KillSwitchRequest) GetEngage() bool {
	if x != nil {
		return x.Engage
	}
	return false
}

func (x *KillSwitchRequest) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type KillSwitchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Engaged       bool                   `protobuf:"varint,1,opt,name=engaged,proto3" json:"engaged,omitempty"`
	Actor         string                 `protobuf:"bytes,2,opt,name=actor,proto3" json:"actor,omitempty"`
	Reason        string                 `protobuf:"bytes,3,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *KillSwitchResponse) Reset() {
	*x = KillSwitchResponse{}
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *KillSwitchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*KillSwitchResponse) ProtoMessage() {}

func (x *KillSwitchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use KillSwitchResponse.ProtoReflect.Descriptor instead.
func (*KillSwitchResponse) Descriptor() ([]byte, []int) {
	return file_occkernel_v1_occkernel_proto_rawDescGZIP(), []int{19}
}

func (x *KillSwitchResponse) GetEngaged() bool {
	if x != nil {
		return x.Engaged
	}
	return false
}

func (x *KillSwitchResponse) GetActor() string {
	if x != nil {
		return x.Actor
	}
	return ""
}

func (x *KillSwitchResponse) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type StatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StatusRequest) Reset() {
	*x = StatusRequest{}
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StatusRequest) ProtoMessage() {}

func (x *StatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StatusRequest.ProtoReflect.Descriptor instead.
func (*StatusRequest) Descriptor() ([]byte, []int) {
	return file_occkernel_v1_occkernel_proto_rawDescGZIP(), []int{20}
}

type StatusResponse struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Degraded          bool                   `protobuf:"varint,1,opt,name=degraded,proto3" json:"degraded,omitempty"`
	KillSwitchEngaged bool                   `protobuf:"varint,2,opt,name=kill_switch_engaged,json=killSwitchEngaged,proto3" json:"kill_switch_engaged,omitempty"`
	QueueDepth        int32                  `protobuf:"varint,3,opt,name=queue_depth,json=queueDepth,proto3" json:"queue_depth,omitempty"`
	ChainHeadSequence uint64                 `protobuf:"varint,4,opt,name=chain_head_sequence,json=chainHeadSequence,proto3" json:"chain_head_sequence,omitempty"`
	ChainHeadHash     string                 `protobuf:"bytes,5,opt,name=chain_head_hash,json=chainHeadHash,proto3" json:"chain_head_hash,omitempty"`
	ConfigHash        string                 `protobuf:"bytes,6,opt,name=config_hash,json=configHash,proto3" json:"config_hash,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *StatusResponse) Reset() {
	*x = StatusResponse{}
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StatusResponse) ProtoMessage() {}

func (x *StatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_occkernel_v1_occkernel_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StatusResponse.ProtoReflect.Descriptor instead.
func (*StatusResponse) Descriptor() ([]byte, []int) {
	return file_occkernel_v1_occkernel_proto_rawDescGZIP(), []int{21}
}

func (x *StatusResponse) GetDegraded() bool {
	if x != nil {
		return x.Degraded
	}
	return false
}

func (x *StatusResponse) GetKillSwitchEngaged() bool {
	if x != nil {
		return x.KillSwitchEngaged
	}
	return false
}

func (x *StatusResponse) GetQueueDepth() int32 {
	if x != nil {
		return x.QueueDepth
	}
	return 0
}

func (x *StatusResponse) GetChainHeadSequence() uint64 {
	if x != nil {
		return x.ChainHeadSequence
	}
	return 0
}

func (x *StatusResponse) GetChainHeadHash() string {
	if x != nil {
		return x.ChainHeadHash
	}
	return ""
}

func (x *StatusResponse) GetConfigHash() string {
	if x != nil {
		return x.ConfigHash
	}
	return ""
}

var File_occkernel_v1_occkernel_proto protoreflect.FileDescriptor

const file_occkernel_v1_occkernel_proto_rawDesc = "" +
	"\n" +
	"\x1cocckernel/v1/occkernel.proto\x12\focckernel.v1\"\xa7\x03\n" +
	"\x03Pdo\x12\x15\n" +
	"\x06pdo_id\x18\x01 \x01(\tR\x05pdoId\x12#\n" +
	"\rtier_required\x18\x02 \x01(\x05R\ftierRequired\x12\x14\n" +
	"\x05state\x18\x03 \x01(\tR\x05state\x126\n" +
	"\x17originating_decision_id\x18\x04 \x01(\tR\x15originatingDecisionId\x120\n" +
	"\x14originating_actor_id\x18\x05 \x01(\tR\x12originatingActorId\x12\"\n" +
	"\rvalue_at_risk\x18\x06 \x01(\x03R\vvalueAtRisk\x12\x18\n" +
	"\apayload\x18\a \x01(\fR\apayload\x12+\n" +
	"\x11enqueued_sequence\x18\b \x01(\x04R\x10enqueuedSequence\x12\x1d\n" +
	"\n" +
	"claimed_by\x18\t \x01(\tR\tclaimedBy\x12\x18\n" +
	"\aoutcome\x18\n" +
	" \x01(\tR\aoutcome\x12!\n" +
	"\fttl_deadline\x18\v \x01(\tR\vttlDeadline\x12\x1d\n" +
	"\n" +
	"created_at\x18\f \x01(\tR\tcreatedAt\"\xf1\x01\n" +
	"\x10CreatePdoRequest\x12#\n" +
	"\rtier_required\x18\x01 \x01(\x05R\ftierRequired\x126\n" +
	"\x17originating_decision_id\x18\x02 \x01(\tR\x15originatingDecisionId\x120\n" +
	"\x14originating_actor_id\x18\x03 \x01(\tR\x12originatingActorId\x12\"\n" +
	"\rvalue_at_risk\x18\x04 \x01(\x03R\vvalueAtRisk\x12\x18\n" +
	"\apayload\x18\x05 \x01(\fR\apayload\x12\x10\n" +
	"\x03ttl\x18\x06 \x01(\tR\x03ttl\"8\n" +
	"\x11CreatePdoResponse\x12#\n" +
	"\x03pdo\x18\x01 \x01(\v2\x11.occkernel.v1.PdoR\x03pdo\"f\n" +
	"\fClaimRequest\x12\x15\n" +
	"\x06pdo_id\x18\x01 \x01(\tR\x05pdoId\x12\x1f\n" +
	"\voperator_id\x18\x02 \x01(\tR\n" +
	"operatorId\x12\x1e\n" +
	"\n" +
	"credential\x18\x03 \x01(\tR\n" +
	"credential\"4\n" +
	"\rClaimResponse\x12#\n" +
	"\x03pdo\x18\x01 \x01(\v2\x11.occkernel.v1.PdoR\x03pdo\"\xe5\x01\n" +
	"\rCommitRequest\x12\x15\n" +
	"\x06pdo_id\x18\x01 \x01(\tR\x05pdoId\x12\x1f\n" +
	"\voperator_id\x18\x02 \x01(\tR\n" +
	"operatorId\x12\x1e\n" +
	"\n" +
	"credential\x18\x03 \x01(\tR\n" +
	"credential\x12\x1b\n" +
	"\ttier_used\x18\x04 \x01(\x05R\btierUsed\x12\x18\n" +
	"\aoutcome\x18\x05 \x01(\tR\aoutcome\x12$\n" +
	"\rjustification\x18\x06 \x01(\tR\rjustification\x12\x1f\n" +
	"\vincident_id\x18\a \x01(\tR\n" +
	"incidentId\"\xdb\x01\n" +
	"\x0eCommitResponse\x12\x18\n" +
	"\aallowed\x18\x01 \x01(\bR\aallowed\x12\x1f\n" +
	"\vdenial_code\x18\x02 \x01(\tR\n" +
	"denialCode\x12#\n" +
	"\rdenial_reason\x18\x03 \x01(\tR\fdenialReason\x12#\n" +
	"\x03pdo\x18\x04 \x01(\v2\x11.occkernel.v1.PdoR\x03pdo\x12%\n" +
	"\x0eentry_sequence\x18\x05 \x01(\x04R\rentrySequence\x12\x1d\n" +
	"\n" +
	"entry_hash\x18\x06 \x01(\tR\tentryHash\"C\n" +
	"\x0fWithdrawRequest\x12\x15\n" +
	"\x06pdo_id\x18\x01 \x01(\tR\x05pdoId\x12\x19\n" +
	"\bactor_id\x18\x02 \x01(\tR\aactorId\"7\n" +
	"\x10WithdrawResponse\x12#\n" +
	"\x03pdo\x18\x01 \x01(\v2\x11.occkernel.v1.PdoR\x03pdo\"'\n" +
	"\x0eExecuteRequest\x12\x15\n" +
	"\x06pdo_id\x18\x01 \x01(\tR\x05pdoId\"6\n" +
	"\x0fExecuteResponse\x12#\n" +
	"\x03pdo\x18\x01 \x01(\v2\x11.occkernel.v1.PdoR\x03pdo\"&\n" +
	"\rGetPdoRequest\x12\x15\n" +
	"\x06pdo_id\x18\x01 \x01(\tR\x05pdoId\"5\n" +
	"\x0eGetPdoResponse\x12#\n" +
	"\x03pdo\x18\x01 \x01(\v2\x11.occkernel.v1.PdoR\x03pdo\"\x12\n" +
	"\x10ListQueueRequest\"R\n" +
	"\tQueueItem\x12\x15\n" +
	"\x06pdo_id\x18\x01 \x01(\tR\x05pdoId\x12\x12\n" +
	"\x04tier\x18\x02 \x01(\x05R\x04tier\x12\x1a\n" +
	"\bsequence\x18\x03 \x01(\x04R\bsequence\"B\n" +
	"\x11ListQueueResponse\x12-\n" +
	"\x05items\x18\x01 \x03(\v2\x17.occkernel.v1.QueueItemR\x05items\"8\n" +
	"\x12ExportAuditRequest\x12\x12\n" +
	"\x04from\x18\x01 \x01(\x04R\x04from\x12\x0e\n" +
	"\x02to\x18\x02 \x01(\x04R\x02to\"\x8e\x01\n" +
	"\x13ExportAuditResponse\x12\x1f\n" +
	"\vexport_json\x18\x01 \x01(\fR\n" +
	"exportJson\x12\x1f\n" +
	"\vanchor_hash\x18\x02 \x01(\tR\n" +
	"anchorHash\x12\x1b\n" +
	"\ttail_hash\x18\x03 \x01(\tR\btailHash\x12\x18\n" +
	"\aentries\x18\x04 \x01(\x04R\aentries\"\x84\x01\n" +
	"\x11KillSwitchRequest\x12\x1f\n" +
	"\voperator_id\x18\x01 \x01(\tR\n" +
	"operatorId\x12\x1e\n" +
	"\n" +
	"credential\x18\x02 \x01(\tR\n" +
	"credential\x12\x16\n" +
	"\x06engage\x18\x03 \x01(\bR\x06engage\x12\x16\n" +
	"\x06reason\x18\x04 \x01(\tR\x06reason\"\\\n" +
	"\x12KillSwitchResponse\x12\x18\n" +
	"\aengaged\x18\x01 \x01(\bR\aengaged\x12\x14\n" +
	"\x05actor\x18\x02 \x01(\tR\x05actor\x12\x16\n" +
	"\x06reason\x18\x03 \x01(\tR\x06reason\"\x0f\n" +
	"\rStatusRequest\"\xf6\x01\n" +
	"\x0eStatusResponse\x12\x1a\n" +
	"\bdegraded\x18\x01 \x01(\bR\bdegraded\x12.\n" +
	"\x13kill_switch_engaged\x18\x02 \x01(\bR\x11killSwitchEngaged\x12\x1f\n" +
	"\vqueue_depth\x18\x03 \x01(\x05R\n" +
	"queueDepth\x12.\n" +
	"\x13chain_head_sequence\x18\x04 \x01(\x04R\x11chainHeadSequence\x12&\n" +
	"\x0fchain_head_hash\x18\x05 \x01(\tR\rchainHeadHash\x12\x1f\n" +
	"\vconfig_hash\x18\x06 \x01(\tR\n" +
	"configHash2\xf7\x05\n" +
	"\x10OcckernelService\x12L\n" +
	"\tCreatePdo\x12\x1e.occkernel.v1.CreatePdoRequest\x1a\x1f.occkernel.v1.CreatePdoResponse\x12@\n" +
	"\x05Claim\x12\x1a.occkernel.v1.ClaimRequest\x1a\x1b.occkernel.v1.ClaimResponse\x12C\n" +
	"\x06Commit\x12\x1b.occkernel.v1.CommitRequest\x1a\x1c.occkernel.v1.CommitResponse\x12I\n" +
	"\bWithdraw\x12\x1d.occkernel.v1.WithdrawRequest\x1a\x1e.occkernel.v1.WithdrawResponse\x12F\n" +
	"\aExecute\x12\x1c.occkernel.v1.ExecuteRequest\x1a\x1d.occkernel.v1.ExecuteResponse\x12C\n" +
	"\x06GetPdo\x12\x1b.occkernel.v1.GetPdoRequest\x1a\x1c.occkernel.v1.GetPdoResponse\x12L\n" +
	"\tListQueue\x12\x1e.occkernel.v1.ListQueueRequest\x1a\x1f.occkernel.v1.ListQueueResponse\x12R\n" +
	"\vExportAudit\x12 .occkernel.v1.ExportAuditRequest\x1a!.occkernel.v1.ExportAuditResponse\x12O\n" +
	"\n" +
	"KillSwitch\x12\x1f.occkernel.v1.KillSwitchRequest\x1a .occkernel.v1.KillSwitchResponse\x12C\n" +
	"\x06Status\x12\x1b.occkernel.v1.StatusRequest\x1a\x1c.occkernel.v1.StatusResponseBBZ@github.com/ppiankov/occkernel/api/proto/occkernel/v1;occkernelv1b\x06proto3"

var (
	file_occkernel_v1_occkernel_proto_rawDescOnce sync.Once
	file_occkernel_v1_occkernel_proto_rawDescData []byte
)

func file_occkernel_v1_occkernel_proto_rawDescGZIP() []byte {
	file_occkernel_v1_occkernel_proto_rawDescOnce.Do(func() {
		file_occkernel_v1_occkernel_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_occkernel_v1_occkernel_proto_rawDesc), len(file_occkernel_v1_occkernel_proto_rawDesc)))
	})
	return file_occkernel_v1_occkernel_proto_rawDescData
}

var file_occkernel_v1_occkernel_proto_msgTypes = make([]protoimpl.MessageInfo, 22)
var file_occkernel_v1_occkernel_proto_goTypes = []any{
	(*Pdo)(nil),                 // 0: occkernel.v1.Pdo
	(*CreatePdoRequest)(nil),    // 1: occkernel.v1.CreatePdoRequest
	(*CreatePdoResponse)(nil),   // 2: occkernel.v1.CreatePdoResponse
	(*ClaimRequest)(nil),        // 3: occkernel.v1.ClaimRequest
	(*ClaimResponse)(nil),       // 4: occkernel.v1.ClaimResponse
	(*CommitRequest)(nil),       // 5: occkernel.v1.CommitRequest
	(*CommitResponse)(nil),      // 6: occkernel.v1.CommitResponse
	(*WithdrawRequest)(nil),     // 7: occkernel.v1.WithdrawRequest
	(*WithdrawResponse)(nil),    // 8: occkernel.v1.WithdrawResponse
	(*ExecuteRequest)(nil),      // 9: occkernel.v1.ExecuteRequest
	(*ExecuteResponse)(nil),     // 10: occkernel.v1.ExecuteResponse
	(*GetPdoRequest)(nil),       // 11: occkernel.v1.GetPdoRequest
	(*GetPdoResponse)(nil),      // 12: occkernel.v1.GetPdoResponse
	(*ListQueueRequest)(nil),    // 13: occkernel.v1.ListQueueRequest
	(*QueueItem)(nil),           // 14: occkernel.v1.QueueItem
	(*ListQueueResponse)(nil),   // 15: occkernel.v1.ListQueueResponse
	(*ExportAuditRequest)(nil),  // 16: occkernel.v1.ExportAuditRequest
	(*ExportAuditResponse)(nil), // 17: occkernel.v1.ExportAuditResponse
	(*KillSwitchRequest)(nil),   // 18: occkernel.v1.KillSwitchRequest
	(*KillSwitchResponse)(nil),  // 19: occkernel.v1.KillSwitchResponse
	(*StatusRequest)(nil),       // 20: occkernel.v1.StatusRequest
	(*StatusResponse)(nil),      // 21: occkernel.v1.StatusResponse
}
var file_occkernel_v1_occkernel_proto_depIdxs = []int32{
	0,  // 0: occkernel.v1.CreatePdoResponse.pdo:type_name -> occkernel.v1.Pdo
	0,  // 1: occkernel.v1.ClaimResponse.pdo:type_name -> occkernel.v1.Pdo
	0,  // 2: occkernel.v1.CommitResponse.pdo:type_name -> occkernel.v1.Pdo
	0,  // 3: occkernel.v1.WithdrawResponse.pdo:type_name -> occkernel.v1.Pdo
	0,  // 4: occkernel.v1.ExecuteResponse.pdo:type_name -> occkernel.v1.Pdo
	0,  // 5: occkernel.v1.GetPdoResponse.pdo:type_name -> occkernel.v1.Pdo
	14, // 6: occkernel.v1.ListQueueResponse.items:type_name -> occkernel.v1.QueueItem
	1,  // 7: occkernel.v1.OcckernelService.CreatePdo:input_type -> occkernel.v1.CreatePdoRequest
	3,  // 8: occkernel.v1.OcckernelService.Claim:input_type -> occkernel.v1.ClaimRequest
	5,  // 9: occkernel.v1.OcckernelService.Commit:input_type -> occkernel.v1.CommitRequest
	7,  // 10: occkernel.v1.OcckernelService.Withdraw:input_type -> occkernel.v1.WithdrawRequest
	9,  // 11: occkernel.v1.OcckernelService.Execute:input_type -> occkernel.v1.ExecuteRequest
	11, // 12: occkernel.v1.OcckernelService.GetPdo:input_type -> occkernel.v1.GetPdoRequest
	13, // 13: occkernel.v1.OcckernelService.ListQueue:input_type -> occkernel.v1.ListQueueRequest
	16, // 14: occkernel.v1.OcckernelService.ExportAudit:input_type -> occkernel.v1.ExportAuditRequest
	18, // 15: occkernel.v1.OcckernelService.KillSwitch:input_type -> occkernel.v1.KillSwitchRequest
	20, // 16: occkernel.v1.OcckernelService.Status:input_type -> occkernel.v1.StatusRequest
	2,  // 17: occkernel.v1.OcckernelService.CreatePdo:output_type -> occkernel.v1.CreatePdoResponse
	4,  // 18: occkernel.v1.OcckernelService.Claim:output_type -> occkernel.v1.ClaimResponse
	6,  // 19: occkernel.v1.OcckernelService.Commit:output_type -> occkernel.v1.CommitResponse
	8,  // 20: occkernel.v1.OcckernelService.Withdraw:output_type -> occkernel.v1.WithdrawResponse
	10, // 21: occkernel.v1.OcckernelService.Execute:output_type -> occkernel.v1.ExecuteResponse
	12, // 22: occkernel.v1.OcckernelService.GetPdo:output_type -> occkernel.v1.GetPdoResponse
	15, // 23: occkernel.v1.OcckernelService.ListQueue:output_type -> occkernel.v1.ListQueueResponse
	17, // 24: occkernel.v1.OcckernelService.ExportAudit:output_type -> occkernel.v1.ExportAuditResponse
	19, // 25: occkernel.v1.OcckernelService.KillSwitch:output_type -> occkernel.v1.KillSwitchResponse
	21, // 26: occkernel.v1.OcckernelService.Status:output_type -> occkernel.v1.StatusResponse
	17, // [17:27] is the sub-list for method output_type
	7,  // [7:17] is the sub-list for method input_type
	7,  // [7:7] is the sub-list for extension type_name
	7,  // [7:7] is the sub-list for extension extendee
	0,  // [0:7] is the sub-list for field type_name
}

func init() { file_occkernel_v1_occkernel_proto_init() }
func file_occkernel_v1_occkernel_proto_init() {
	if File_occkernel_v1_occkernel_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_occkernel_v1_occkernel_proto_rawDesc), len(file_occkernel_v1_occkernel_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   22,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_occkernel_v1_occkernel_proto_goTypes,
		DependencyIndexes: file_occkernel_v1_occkernel_proto_depIdxs,
		MessageInfos:      file_occkernel_v1_occkernel_proto_msgTypes,
	}.Build()
	File_occkernel_v1_occkernel_proto = out.File
	file_occkernel_v1_occkernel_proto_goTypes = nil
	file_occkernel_v1_occkernel_proto_depIdxs = nil
}
