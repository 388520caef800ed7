// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.34.2
// 	protoc        (unknown)
// source: cashpilot/v1/cashpilot.proto

package cashpilotv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type AllocationStrategy int32

const (
	AllocationStrategy_ALLOCATION_STRATEGY_UNSPECIFIED AllocationStrategy = 0
	AllocationStrategy_ALLOCATION_STRATEGY_AVALANCHE   AllocationStrategy = 1
	AllocationStrategy_ALLOCATION_STRATEGY_SNOWBALL    AllocationStrategy = 2
	AllocationStrategy_ALLOCATION_STRATEGY_HYBRID      AllocationStrategy = 3
)

// Enum value maps for AllocationStrategy.
var (
	AllocationStrategy_name = map[int32]string{
		0: "ALLOCATION_STRATEGY_UNSPECIFIED",
		1: "ALLOCATION_STRATEGY_AVALANCHE",
		2: "ALLOCATION_STRATEGY_SNOWBALL",
		3: "ALLOCATION_STRATEGY_HYBRID",
	}
	AllocationStrategy_value = map[string]int32{
		"ALLOCATION_STRATEGY_UNSPECIFIED": 0,
		"ALLOCATION_STRATEGY_AVALANCHE":   1,
		"ALLOCATION_STRATEGY_SNOWBALL":    2,
		"ALLOCATION_STRATEGY_HYBRID":      3,
	}
)

func (x AllocationStrategy) Enum() *AllocationStrategy {
	p := new(AllocationStrategy)
	*p = x
	return p
}

func (x AllocationStrategy) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (AllocationStrategy) Descriptor() protoreflect.EnumDescriptor {
	return file_cashpilot_v1_cashpilot_proto_enumTypes[0].Descriptor()
}

func (AllocationStrategy) Type() protoreflect.EnumType {
	return &file_cashpilot_v1_cashpilot_proto_enumTypes[0]
}

func (x AllocationStrategy) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use AllocationStrategy.Descriptor instead.
func (AllocationStrategy) EnumDescriptor() ([]byte, []int) {
	return file_cashpilot_v1_cashpilot_proto_rawDescGZIP(), []int{0}
}

type RecurringFrequency int32

const (
	RecurringFrequency_RECURRING_FREQUENCY_UNSPECIFIED RecurringFrequency = 0
	RecurringFrequency_RECURRING_FREQUENCY_WEEKLY      RecurringFrequency = 1
	RecurringFrequency_RECURRING_FREQUENCY_BIWEEKLY    RecurringFrequency = 2
	RecurringFrequency_RECURRING_FREQUENCY_SEMIMONTHLY RecurringFrequency = 3
	RecurringFrequency_RECURRING_FREQUENCY_MONTHLY     RecurringFrequency = 4
	RecurringFrequency_RECURRING_FREQUENCY_QUARTERLY   RecurringFrequency = 5
	RecurringFrequency_RECURRING_FREQUENCY_ANNUALLY    RecurringFrequency = 6
)

// Enum value maps for RecurringFrequency.
var (
	RecurringFrequency_name = map[int32]string{
		0: "RECURRING_FREQUENCY_UNSPECIFIED",
		1: "RECURRING_FREQUENCY_WEEKLY",
		2: "RECURRING_FREQUENCY_BIWEEKLY",
		3: "RECURRING_FREQUENCY_SEMIMONTHLY",
		4: "RECURRING_FREQUENCY_MONTHLY",
		5: "RECURRING_FREQUENCY_QUARTERLY",
		6: "RECURRING_FREQUENCY_ANNUALLY",
	}
	RecurringFrequency_value = map[string]int32{
		"RECURRING_FREQUENCY_UNSPECIFIED": 0,
		"RECURRING_FREQUENCY_WEEKLY":      1,
		"RECURRING_FREQUENCY_BIWEEKLY":    2,
		"RECURRING_FREQUENCY_SEMIMONTHLY": 3,
		"RECURRING_FREQUENCY_MONTHLY":     4,
		"RECURRING_FREQUENCY_QUARTERLY":   5,
		"RECURRING_FREQUENCY_ANNUALLY":    6,
	}
)

func (x RecurringFrequency) Enum() *RecurringFrequency {
	p := new(RecurringFrequency)
	*p = x
	return p
}

func (x RecurringFrequency) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (RecurringFrequency) Descriptor() protoreflect.EnumDescriptor {
	return file_cashpilot_v1_cashpilot_proto_enumTypes[1].Descriptor()
}

func (RecurringFrequency) Type() protoreflect.EnumType {
	return &file_cashpilot_v1_cashpilot_proto_enumTypes[1]
}

func (x RecurringFrequency) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use RecurringFrequency.Descriptor instead.
func (RecurringFrequency) EnumDescriptor() ([]byte, []int) {
	return file_cashpilot_v1_cashpilot_proto_rawDescGZIP(), []int{1}
}

type CalculateSpendingStatisticsRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	AsOf       *timestamppb.Timestamp `protobuf:"bytes,1,opt,name=as_of,json=asOf,proto3" json:"as_of,omitempty"`
	WindowDays []int32                `protobuf:"varint,2,rep,packed,name=window_days,json=windowDays,proto3" json:"window_days,omitempty"`
}

func (x *CalculateSpendingStatisticsRequest) Reset() {
	*x = CalculateSpendingStatisticsRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_cashpilot_v1_cashpilot_proto_msgTypes[0]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *CalculateSpendingStatisticsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CalculateSpendingStatisticsRequest) ProtoMessage() {}

func (x *CalculateSpendingStatisticsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cashpilot_v1_cashpilot_proto_msgTypes[0]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CalculateSpendingStatisticsRequest.ProtoReflect.Descriptor instead.
func (*CalculateSpendingStatisticsRequest) Descriptor() ([]byte, []int) {
	return file_cashpilot_v1_cashpilot_proto_rawDescGZIP(), []int{0}
}

func (x *CalculateSpendingStatisticsRequest) GetAsOf() *timestamppb.Timestamp {
	if x != nil {
		return x.AsOf
	}
	return nil
}

func (x *CalculateSpendingStatisticsRequest) GetWindowDays() []int32 {
	if x != nil {
		return x.WindowDays
	}
	return nil
}

type WindowStatistics struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	WindowDays        int32  `protobuf:"varint,1,opt,name=window_days,json=windowDays,proto3" json:"window_days,omitempty"`
	AverageDailySpend string `protobuf:"bytes,2,opt,name=average_daily_spend,json=averageDailySpend,proto3" json:"average_daily_spend,omitempty"`
	StdDevDailySpend  string `protobuf:"bytes,3,opt,name=std_dev_daily_spend,json=stdDevDailySpend,proto3" json:"std_dev_daily_spend,omitempty"`
	MinDailySpend     string `protobuf:"bytes,4,opt,name=min_daily_spend,json=minDailySpend,proto3" json:"min_daily_spend,omitempty"`
	MaxDailySpend     string `protobuf:"bytes,5,opt,name=max_daily_spend,json=maxDailySpend,proto3" json:"max_daily_spend,omitempty"`
	Percentile_25     string `protobuf:"bytes,6,opt,name=percentile_25,json=percentile25,proto3" json:"percentile_25,omitempty"`
	Percentile_75     string `protobuf:"bytes,7,opt,name=percentile_75,json=percentile75,proto3" json:"percentile_75,omitempty"`
	Percentile_90     string `protobuf:"bytes,8,opt,name=percentile_90,json=percentile90,proto3" json:"percentile_90,omitempty"`
}

func (x *WindowStatistics) Reset() {
	*x = WindowStatistics{}
	if protoimpl.UnsafeEnabled {
		mi := &file_cashpilot_v1_cashpilot_proto_msgTypes[1]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *WindowStatistics) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WindowStatistics) ProtoMessage() {}

func (x *WindowStatistics) ProtoReflect() protoreflect.Message {
	mi := &file_cashpilot_v1_cashpilot_proto_msgTypes[1]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WindowStatistics.ProtoReflect.Descriptor instead.
func (*WindowStatistics) Descriptor() ([]byte, []int) {
	return file_cashpilot_v1_cashpilot_proto_rawDescGZIP(), []int{1}
}

func (x *WindowStatistics) GetWindowDays() int32 {
	if x != nil {
		return x.WindowDays
	}
	return 0
}

func (x *WindowStatistics) GetAverageDailySpend() string {
	if x != nil {
		return x.AverageDailySpend
	}
	return ""
}

func (x *WindowStatistics) GetStdDevDailySpend() string {
	if x != nil {
		return x.StdDevDailySpend
	}
	return ""
}

func (x *WindowStatistics) GetMinDailySpend() string {
	if x != nil {
		return x.MinDailySpend
	}
	return ""
}

func (x *WindowStatistics) GetMaxDailySpend() string {
	if x != nil {
		return x.MaxDailySpend
	}
	return ""
}

func (x *WindowStatistics) GetPercentile_25() string {
	if x != nil {
		return x.Percentile_25
	}
	return ""
}

func (x *WindowStatistics) GetPercentile_75() string {
	if x != nil {
		return x.Percentile_75
	}
	return ""
}

func (x *WindowStatistics) GetPercentile_90() string {
	if x != nil {
		return x.Percentile_90
	}
	return ""
}

type CalculateSpendingStatisticsResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Windows []*WindowStatistics `protobuf:"bytes,1,rep,name=windows,proto3" json:"windows,omitempty"`
}

func (x *CalculateSpendingStatisticsResponse) Reset() {
	*x = CalculateSpendingStatisticsResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_cashpilot_v1_cashpilot_proto_msgTypes[2]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *CalculateSpendingStatisticsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CalculateSpendingStatisticsResponse) ProtoMessage() {}

func (x *CalculateSpendingStatisticsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cashpilot_v1_cashpilot_proto_msgTypes[2]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CalculateSpendingStatisticsResponse.ProtoReflect.Descriptor instead.
func (*CalculateSpendingStatisticsResponse) Descriptor() ([]byte, []int) {
	return file_cashpilot_v1_cashpilot_proto_rawDescGZIP(), []int{2}
}

func (x *CalculateSpendingStatisticsResponse) GetWindows() []*WindowStatistics {
	if x != nil {
		return x.Windows
	}
	return nil
}

type PlanDebtAllocationRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	ExtraPaymentPool string                 `protobuf:"bytes,1,opt,name=extra_payment_pool,json=extraPaymentPool,proto3" json:"extra_payment_pool,omitempty"`
	Strategy         AllocationStrategy     `protobuf:"varint,2,opt,name=strategy,proto3,enum=cashpilot.v1.AllocationStrategy" json:"strategy,omitempty"`
	AsOf             *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=as_of,json=asOf,proto3" json:"as_of,omitempty"`
}

func (x *PlanDebtAllocationRequest) Reset() {
	*x = PlanDebtAllocationRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_cashpilot_v1_cashpilot_proto_msgTypes[3]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *PlanDebtAllocationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PlanDebtAllocationRequest) ProtoMessage() {}

func (x *PlanDebtAllocationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cashpilot_v1_cashpilot_proto_msgTypes[3]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PlanDebtAllocationRequest.ProtoReflect.Descriptor instead.
func (*PlanDebtAllocationRequest) Descriptor() ([]byte, []int) {
	return file_cashpilot_v1_cashpilot_proto_rawDescGZIP(), []int{3}
}

func (x *PlanDebtAllocationRequest) GetExtraPaymentPool() string {
	if x != nil {
		return x.ExtraPaymentPool
	}
	return ""
}

func (x *PlanDebtAllocationRequest) GetStrategy() AllocationStrategy {
	if x != nil {
		return x.Strategy
	}
	return AllocationStrategy_ALLOCATION_STRATEGY_UNSPECIFIED
}

func (x *PlanDebtAllocationRequest) GetAsOf() *timestamppb.Timestamp {
	if x != nil {
		return x.AsOf
	}
	return nil
}

type DebtPayment struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	DebtName         string `protobuf:"bytes,1,opt,name=debt_name,json=debtName,proto3" json:"debt_name,omitempty"`
	MinimumPayment   string `protobuf:"bytes,2,opt,name=minimum_payment,json=minimumPayment,proto3" json:"minimum_payment,omitempty"`
	ExtraPayment     string `protobuf:"bytes,3,opt,name=extra_payment,json=extraPayment,proto3" json:"extra_payment,omitempty"`
	TotalPayment     string `protobuf:"bytes,4,opt,name=total_payment,json=totalPayment,proto3" json:"total_payment,omitempty"`
	RemainingBalance string `protobuf:"bytes,5,opt,name=remaining_balance,json=remainingBalance,proto3" json:"remaining_balance,omitempty"`
}

func (x *DebtPayment) Reset() {
	*x = DebtPayment{}
	if protoimpl.UnsafeEnabled {
		mi := &file_cashpilot_v1_cashpilot_proto_msgTypes[4]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *DebtPayment) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DebtPayment) ProtoMessage() {}

func (x *DebtPayment) ProtoReflect() protoreflect.Message {
	mi := &file_cashpilot_v1_cashpilot_proto_msgTypes[4]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DebtPayment.ProtoReflect.Descriptor instead.
func (*DebtPayment) Descriptor() ([]byte, []int) {
	return file_cashpilot_v1_cashpilot_proto_rawDescGZIP(), []int{4}
}

func (x *DebtPayment) GetDebtName() string {
	if x != nil {
		return x.DebtName
	}
	return ""
}

func (x *DebtPayment) GetMinimumPayment() string {
	if x != nil {
		return x.MinimumPayment
	}
	return ""
}

func (x *DebtPayment) GetExtraPayment() string {
	if x != nil {
		return x.ExtraPayment
	}
	return ""
}

func (x *DebtPayment) GetTotalPayment() string {
	if x != nil {
		return x.TotalPayment
	}
	return ""
}

func (x *DebtPayment) GetRemainingBalance() string {
	if x != nil {
		return x.RemainingBalance
	}
	return ""
}

type PlanDebtAllocationResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Strategy     AllocationStrategy `protobuf:"varint,1,opt,name=strategy,proto3,enum=cashpilot.v1.AllocationStrategy" json:"strategy,omitempty"`
	Payments     []*DebtPayment     `protobuf:"bytes,2,rep,name=payments,proto3" json:"payments,omitempty"`
	TotalPayment string             `protobuf:"bytes,3,opt,name=total_payment,json=totalPayment,proto3" json:"total_payment,omitempty"`
}

func (x *PlanDebtAllocationResponse) Reset() {
	*x = PlanDebtAllocationResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_cashpilot_v1_cashpilot_proto_msgTypes[5]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *PlanDebtAllocationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PlanDebtAllocationResponse) ProtoMessage() {}

func (x *PlanDebtAllocationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cashpilot_v1_cashpilot_proto_msgTypes[5]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PlanDebtAllocationResponse.ProtoReflect.Descriptor instead.
func (*PlanDebtAllocationResponse) Descriptor() ([]byte, []int) {
	return file_cashpilot_v1_cashpilot_proto_rawDescGZIP(), []int{5}
}

func (x *PlanDebtAllocationResponse) GetStrategy() AllocationStrategy {
	if x != nil {
		return x.Strategy
	}
	return AllocationStrategy_ALLOCATION_STRATEGY_UNSPECIFIED
}

func (x *PlanDebtAllocationResponse) GetPayments() []*DebtPayment {
	if x != nil {
		return x.Payments
	}
	return nil
}

func (x *PlanDebtAllocationResponse) GetTotalPayment() string {
	if x != nil {
		return x.TotalPayment
	}
	return ""
}

type RunCashDebtSimulationRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	StartDate   *timestamppb.Timestamp `protobuf:"bytes,1,opt,name=start_date,json=startDate,proto3" json:"start_date,omitempty"`
	EndDate     *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=end_date,json=endDate,proto3" json:"end_date,omitempty"`
	InitialCash string                 `protobuf:"bytes,3,opt,name=initial_cash,json=initialCash,proto3" json:"initial_cash,omitempty"`
}

func (x *RunCashDebtSimulationRequest) Reset() {
	*x = RunCashDebtSimulationRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_cashpilot_v1_cashpilot_proto_msgTypes[6]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *RunCashDebtSimulationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunCashDebtSimulationRequest) ProtoMessage() {}

func (x *RunCashDebtSimulationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cashpilot_v1_cashpilot_proto_msgTypes[6]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunCashDebtSimulationRequest.ProtoReflect.Descriptor instead.
func (*RunCashDebtSimulationRequest) Descriptor() ([]byte, []int) {
	return file_cashpilot_v1_cashpilot_proto_rawDescGZIP(), []int{6}
}

func (x *RunCashDebtSimulationRequest) GetStartDate() *timestamppb.Timestamp {
	if x != nil {
		return x.StartDate
	}
	return nil
}

func (x *RunCashDebtSimulationRequest) GetEndDate() *timestamppb.Timestamp {
	if x != nil {
		return x.EndDate
	}
	return nil
}

func (x *RunCashDebtSimulationRequest) GetInitialCash() string {
	if x != nil {
		return x.InitialCash
	}
	return ""
}

type DaySnapshot struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Date             *timestamppb.Timestamp `protobuf:"bytes,1,opt,name=date,proto3" json:"date,omitempty"`
	CashBalance      string                 `protobuf:"bytes,2,opt,name=cash_balance,json=cashBalance,proto3" json:"cash_balance,omitempty"`
	DebtBalances     map[string]string      `protobuf:"bytes,3,rep,name=debt_balances,json=debtBalances,proto3" json:"debt_balances,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
	InterestAccrued  string                 `protobuf:"bytes,4,opt,name=interest_accrued,json=interestAccrued,proto3" json:"interest_accrued,omitempty"`
	EventDescription string                 `protobuf:"bytes,5,opt,name=event_description,json=eventDescription,proto3" json:"event_description,omitempty"`
}

func (x *DaySnapshot) Reset() {
	*x = DaySnapshot{}
	if protoimpl.UnsafeEnabled {
		mi := &file_cashpilot_v1_cashpilot_proto_msgTypes[7]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *DaySnapshot) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DaySnapshot) ProtoMessage() {}

func (x *DaySnapshot) ProtoReflect() protoreflect.Message {
	mi := &file_cashpilot_v1_cashpilot_proto_msgTypes[7]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DaySnapshot.ProtoReflect.Descriptor instead.
func (*DaySnapshot) Descriptor() ([]byte, []int) {
	return file_cashpilot_v1_cashpilot_proto_rawDescGZIP(), []int{7}
}

func (x *DaySnapshot) GetDate() *timestamppb.Timestamp {
	if x != nil {
		return x.Date
	}
	return nil
}

func (x *DaySnapshot) GetCashBalance() string {
	if x != nil {
		return x.CashBalance
	}
	return ""
}

func (x *DaySnapshot) GetDebtBalances() map[string]string {
	if x != nil {
		return x.DebtBalances
	}
	return nil
}

func (x *DaySnapshot) GetInterestAccrued() string {
	if x != nil {
		return x.InterestAccrued
	}
	return ""
}

func (x *DaySnapshot) GetEventDescription() string {
	if x != nil {
		return x.EventDescription
	}
	return ""
}

type RunCashDebtSimulationResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Snapshots         []*DaySnapshot         `protobuf:"bytes,1,rep,name=snapshots,proto3" json:"snapshots,omitempty"`
	FinalCashBalance  string                 `protobuf:"bytes,2,opt,name=final_cash_balance,json=finalCashBalance,proto3" json:"final_cash_balance,omitempty"`
	FinalDebtBalances map[string]string      `protobuf:"bytes,3,rep,name=final_debt_balances,json=finalDebtBalances,proto3" json:"final_debt_balances,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
	TotalInterestPaid string                 `protobuf:"bytes,4,opt,name=total_interest_paid,json=totalInterestPaid,proto3" json:"total_interest_paid,omitempty"`
	DebtFreeDate      *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=debt_free_date,json=debtFreeDate,proto3" json:"debt_free_date,omitempty"`
}

func (x *RunCashDebtSimulationResponse) Reset() {
	*x = RunCashDebtSimulationResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_cashpilot_v1_cashpilot_proto_msgTypes[8]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *RunCashDebtSimulationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunCashDebtSimulationResponse) ProtoMessage() {}

func (x *RunCashDebtSimulationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cashpilot_v1_cashpilot_proto_msgTypes[8]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunCashDebtSimulationResponse.ProtoReflect.Descriptor instead.
func (*RunCashDebtSimulationResponse) Descriptor() ([]byte, []int) {
	return file_cashpilot_v1_cashpilot_proto_rawDescGZIP(), []int{8}
}

func (x *RunCashDebtSimulationResponse) GetSnapshots() []*DaySnapshot {
	if x != nil {
		return x.Snapshots
	}
	return nil
}

func (x *RunCashDebtSimulationResponse) GetFinalCashBalance() string {
	if x != nil {
		return x.FinalCashBalance
	}
	return ""
}

func (x *RunCashDebtSimulationResponse) GetFinalDebtBalances() map[string]string {
	if x != nil {
		return x.FinalDebtBalances
	}
	return nil
}

func (x *RunCashDebtSimulationResponse) GetTotalInterestPaid() string {
	if x != nil {
		return x.TotalInterestPaid
	}
	return ""
}

func (x *RunCashDebtSimulationResponse) GetDebtFreeDate() *timestamppb.Timestamp {
	if x != nil {
		return x.DebtFreeDate
	}
	return nil
}

type ProjectInvestmentGrowthRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	InitialBalance string                 `protobuf:"bytes,1,opt,name=initial_balance,json=initialBalance,proto3" json:"initial_balance,omitempty"`
	StartDate      *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=start_date,json=startDate,proto3" json:"start_date,omitempty"`
	EndDate        *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=end_date,json=endDate,proto3" json:"end_date,omitempty"`
	AnnualReturn   string                 `protobuf:"bytes,4,opt,name=annual_return,json=annualReturn,proto3" json:"annual_return,omitempty"`
	// Empty string falls back to the engine's default inflation rate.
	AnnualInflation string `protobuf:"bytes,5,opt,name=annual_inflation,json=annualInflation,proto3" json:"annual_inflation,omitempty"`
	Monthly         bool   `protobuf:"varint,6,opt,name=monthly,proto3" json:"monthly,omitempty"`
}

func (x *ProjectInvestmentGrowthRequest) Reset() {
	*x = ProjectInvestmentGrowthRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_cashpilot_v1_cashpilot_proto_msgTypes[9]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ProjectInvestmentGrowthRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProjectInvestmentGrowthRequest) ProtoMessage() {}

func (x *ProjectInvestmentGrowthRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cashpilot_v1_cashpilot_proto_msgTypes[9]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProjectInvestmentGrowthRequest.ProtoReflect.Descriptor instead.
func (*ProjectInvestmentGrowthRequest) Descriptor() ([]byte, []int) {
	return file_cashpilot_v1_cashpilot_proto_rawDescGZIP(), []int{9}
}

func (x *ProjectInvestmentGrowthRequest) GetInitialBalance() string {
	if x != nil {
		return x.InitialBalance
	}
	return ""
}

func (x *ProjectInvestmentGrowthRequest) GetStartDate() *timestamppb.Timestamp {
	if x != nil {
		return x.StartDate
	}
	return nil
}

func (x *ProjectInvestmentGrowthRequest) GetEndDate() *timestamppb.Timestamp {
	if x != nil {
		return x.EndDate
	}
	return nil
}

func (x *ProjectInvestmentGrowthRequest) GetAnnualReturn() string {
	if x != nil {
		return x.AnnualReturn
	}
	return ""
}

func (x *ProjectInvestmentGrowthRequest) GetAnnualInflation() string {
	if x != nil {
		return x.AnnualInflation
	}
	return ""
}

func (x *ProjectInvestmentGrowthRequest) GetMonthly() bool {
	if x != nil {
		return x.Monthly
	}
	return false
}

type ProjectionPoint struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Date             *timestamppb.Timestamp `protobuf:"bytes,1,opt,name=date,proto3" json:"date,omitempty"`
	NominalValue     string                 `protobuf:"bytes,2,opt,name=nominal_value,json=nominalValue,proto3" json:"nominal_value,omitempty"`
	RealValue        string                 `protobuf:"bytes,3,opt,name=real_value,json=realValue,proto3" json:"real_value,omitempty"`
	TotalContributed string                 `protobuf:"bytes,4,opt,name=total_contributed,json=totalContributed,proto3" json:"total_contributed,omitempty"`
	NominalGrowth    string                 `protobuf:"bytes,5,opt,name=nominal_growth,json=nominalGrowth,proto3" json:"nominal_growth,omitempty"`
	RealGrowth       string                 `protobuf:"bytes,6,opt,name=real_growth,json=realGrowth,proto3" json:"real_growth,omitempty"`
}

func (x *ProjectionPoint) Reset() {
	*x = ProjectionPoint{}
	if protoimpl.UnsafeEnabled {
		mi := &file_cashpilot_v1_cashpilot_proto_msgTypes[10]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ProjectionPoint) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProjectionPoint) ProtoMessage() {}

func (x *ProjectionPoint) ProtoReflect() protoreflect.Message {
	mi := &file_cashpilot_v1_cashpilot_proto_msgTypes[10]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProjectionPoint.ProtoReflect.Descriptor instead.
func (*ProjectionPoint) Descriptor() ([]byte, []int) {
	return file_cashpilot_v1_cashpilot_proto_rawDescGZIP(), []int{10}
}

func (x *ProjectionPoint) GetDate() *timestamppb.Timestamp {
	if x != nil {
		return x.Date
	}
	return nil
}

func (x *ProjectionPoint) GetNominalValue() string {
	if x != nil {
		return x.NominalValue
	}
	return ""
}

func (x *ProjectionPoint) GetRealValue() string {
	if x != nil {
		return x.RealValue
	}
	return ""
}

func (x *ProjectionPoint) GetTotalContributed() string {
	if x != nil {
		return x.TotalContributed
	}
	return ""
}

func (x *ProjectionPoint) GetNominalGrowth() string {
	if x != nil {
		return x.NominalGrowth
	}
	return ""
}

func (x *ProjectionPoint) GetRealGrowth() string {
	if x != nil {
		return x.RealGrowth
	}
	return ""
}

type ProjectInvestmentGrowthResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Points            []*ProjectionPoint `protobuf:"bytes,1,rep,name=points,proto3" json:"points,omitempty"`
	FinalNominalValue string             `protobuf:"bytes,2,opt,name=final_nominal_value,json=finalNominalValue,proto3" json:"final_nominal_value,omitempty"`
	FinalRealValue    string             `protobuf:"bytes,3,opt,name=final_real_value,json=finalRealValue,proto3" json:"final_real_value,omitempty"`
	TotalContributed  string             `protobuf:"bytes,4,opt,name=total_contributed,json=totalContributed,proto3" json:"total_contributed,omitempty"`
	NominalGrowth     string             `protobuf:"bytes,5,opt,name=nominal_growth,json=nominalGrowth,proto3" json:"nominal_growth,omitempty"`
	RealGrowth        string             `protobuf:"bytes,6,opt,name=real_growth,json=realGrowth,proto3" json:"real_growth,omitempty"`
}

func (x *ProjectInvestmentGrowthResponse) Reset() {
	*x = ProjectInvestmentGrowthResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_cashpilot_v1_cashpilot_proto_msgTypes[11]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ProjectInvestmentGrowthResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProjectInvestmentGrowthResponse) ProtoMessage() {}

func (x *ProjectInvestmentGrowthResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cashpilot_v1_cashpilot_proto_msgTypes[11]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProjectInvestmentGrowthResponse.ProtoReflect.Descriptor instead.
func (*ProjectInvestmentGrowthResponse) Descriptor() ([]byte, []int) {
	return file_cashpilot_v1_cashpilot_proto_rawDescGZIP(), []int{11}
}

func (x *ProjectInvestmentGrowthResponse) GetPoints() []*ProjectionPoint {
	if x != nil {
		return x.Points
	}
	return nil
}

func (x *ProjectInvestmentGrowthResponse) GetFinalNominalValue() string {
	if x != nil {
		return x.FinalNominalValue
	}
	return ""
}

func (x *ProjectInvestmentGrowthResponse) GetFinalRealValue() string {
	if x != nil {
		return x.FinalRealValue
	}
	return ""
}

func (x *ProjectInvestmentGrowthResponse) GetTotalContributed() string {
	if x != nil {
		return x.TotalContributed
	}
	return ""
}

func (x *ProjectInvestmentGrowthResponse) GetNominalGrowth() string {
	if x != nil {
		return x.NominalGrowth
	}
	return ""
}

func (x *ProjectInvestmentGrowthResponse) GetRealGrowth() string {
	if x != nil {
		return x.RealGrowth
	}
	return ""
}

type EstimateSpendableCashRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	AvailableCash string                 `protobuf:"bytes,1,opt,name=available_cash,json=availableCash,proto3" json:"available_cash,omitempty"`
	AsOf          *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=as_of,json=asOf,proto3" json:"as_of,omitempty"`
	// Empty string means unset; "0" is an explicit zero buffer.
	SafetyBuffer string `protobuf:"bytes,3,opt,name=safety_buffer,json=safetyBuffer,proto3" json:"safety_buffer,omitempty"`
	// Empty string means unset; the engine derives one from spending history.
	EstimatedDailySpend string `protobuf:"bytes,4,opt,name=estimated_daily_spend,json=estimatedDailySpend,proto3" json:"estimated_daily_spend,omitempty"`
}

func (x *EstimateSpendableCashRequest) Reset() {
	*x = EstimateSpendableCashRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_cashpilot_v1_cashpilot_proto_msgTypes[12]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *EstimateSpendableCashRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EstimateSpendableCashRequest) ProtoMessage() {}

func (x *EstimateSpendableCashRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cashpilot_v1_cashpilot_proto_msgTypes[12]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EstimateSpendableCashRequest.ProtoReflect.Descriptor instead.
func (*EstimateSpendableCashRequest) Descriptor() ([]byte, []int) {
	return file_cashpilot_v1_cashpilot_proto_rawDescGZIP(), []int{12}
}

func (x *EstimateSpendableCashRequest) GetAvailableCash() string {
	if x != nil {
		return x.AvailableCash
	}
	return ""
}

func (x *EstimateSpendableCashRequest) GetAsOf() *timestamppb.Timestamp {
	if x != nil {
		return x.AsOf
	}
	return nil
}

func (x *EstimateSpendableCashRequest) GetSafetyBuffer() string {
	if x != nil {
		return x.SafetyBuffer
	}
	return ""
}

func (x *EstimateSpendableCashRequest) GetEstimatedDailySpend() string {
	if x != nil {
		return x.EstimatedDailySpend
	}
	return ""
}

type SpendableBreakdown struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	ObligationsDue       string `protobuf:"bytes,1,opt,name=obligations_due,json=obligationsDue,proto3" json:"obligations_due,omitempty"`
	PlannedContributions string `protobuf:"bytes,2,opt,name=planned_contributions,json=plannedContributions,proto3" json:"planned_contributions,omitempty"`
	SafetyBuffer         string `protobuf:"bytes,3,opt,name=safety_buffer,json=safetyBuffer,proto3" json:"safety_buffer,omitempty"`
	DaysUntilPaycheck    int32  `protobuf:"varint,4,opt,name=days_until_paycheck,json=daysUntilPaycheck,proto3" json:"days_until_paycheck,omitempty"`
}

func (x *SpendableBreakdown) Reset() {
	*x = SpendableBreakdown{}
	if protoimpl.UnsafeEnabled {
		mi := &file_cashpilot_v1_cashpilot_proto_msgTypes[13]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *SpendableBreakdown) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SpendableBreakdown) ProtoMessage() {}

func (x *SpendableBreakdown) ProtoReflect() protoreflect.Message {
	mi := &file_cashpilot_v1_cashpilot_proto_msgTypes[13]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SpendableBreakdown.ProtoReflect.Descriptor instead.
func (*SpendableBreakdown) Descriptor() ([]byte, []int) {
	return file_cashpilot_v1_cashpilot_proto_rawDescGZIP(), []int{13}
}

func (x *SpendableBreakdown) GetObligationsDue() string {
	if x != nil {
		return x.ObligationsDue
	}
	return ""
}

func (x *SpendableBreakdown) GetPlannedContributions() string {
	if x != nil {
		return x.PlannedContributions
	}
	return ""
}

func (x *SpendableBreakdown) GetSafetyBuffer() string {
	if x != nil {
		return x.SafetyBuffer
	}
	return ""
}

func (x *SpendableBreakdown) GetDaysUntilPaycheck() int32 {
	if x != nil {
		return x.DaysUntilPaycheck
	}
	return 0
}

type ConservativeScenario struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	EstimatedDailySpend        string `protobuf:"bytes,1,opt,name=estimated_daily_spend,json=estimatedDailySpend,proto3" json:"estimated_daily_spend,omitempty"`
	SafetyBuffer               string `protobuf:"bytes,2,opt,name=safety_buffer,json=safetyBuffer,proto3" json:"safety_buffer,omitempty"`
	SpendableNow               string `protobuf:"bytes,3,opt,name=spendable_now,json=spendableNow,proto3" json:"spendable_now,omitempty"`
	ExpectedCashAtNextPaycheck string `protobuf:"bytes,4,opt,name=expected_cash_at_next_paycheck,json=expectedCashAtNextPaycheck,proto3" json:"expected_cash_at_next_paycheck,omitempty"`
}

func (x *ConservativeScenario) Reset() {
	*x = ConservativeScenario{}
	if protoimpl.UnsafeEnabled {
		mi := &file_cashpilot_v1_cashpilot_proto_msgTypes[14]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ConservativeScenario) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConservativeScenario) ProtoMessage() {}

func (x *ConservativeScenario) ProtoReflect() protoreflect.Message {
	mi := &file_cashpilot_v1_cashpilot_proto_msgTypes[14]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConservativeScenario.ProtoReflect.Descriptor instead.
func (*ConservativeScenario) Descriptor() ([]byte, []int) {
	return file_cashpilot_v1_cashpilot_proto_rawDescGZIP(), []int{14}
}

func (x *ConservativeScenario) GetEstimatedDailySpend() string {
	if x != nil {
		return x.EstimatedDailySpend
	}
	return ""
}

func (x *ConservativeScenario) GetSafetyBuffer() string {
	if x != nil {
		return x.SafetyBuffer
	}
	return ""
}

func (x *ConservativeScenario) GetSpendableNow() string {
	if x != nil {
		return x.SpendableNow
	}
	return ""
}

func (x *ConservativeScenario) GetExpectedCashAtNextPaycheck() string {
	if x != nil {
		return x.ExpectedCashAtNextPaycheck
	}
	return ""
}

type EstimateSpendableCashResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	SpendableNow               string                 `protobuf:"bytes,1,opt,name=spendable_now,json=spendableNow,proto3" json:"spendable_now,omitempty"`
	ExpectedCashAtNextPaycheck string                 `protobuf:"bytes,2,opt,name=expected_cash_at_next_paycheck,json=expectedCashAtNextPaycheck,proto3" json:"expected_cash_at_next_paycheck,omitempty"`
	NextPaycheckDate           *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=next_paycheck_date,json=nextPaycheckDate,proto3" json:"next_paycheck_date,omitempty"`
	NextPaycheckAmount         string                 `protobuf:"bytes,4,opt,name=next_paycheck_amount,json=nextPaycheckAmount,proto3" json:"next_paycheck_amount,omitempty"`
	Breakdown                  *SpendableBreakdown    `protobuf:"bytes,5,opt,name=breakdown,proto3" json:"breakdown,omitempty"`
	Conservative               *ConservativeScenario  `protobuf:"bytes,6,opt,name=conservative,proto3" json:"conservative,omitempty"`
}

func (x *EstimateSpendableCashResponse) Reset() {
	*x = EstimateSpendableCashResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_cashpilot_v1_cashpilot_proto_msgTypes[15]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *EstimateSpendableCashResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EstimateSpendableCashResponse) ProtoMessage() {}

func (x *EstimateSpendableCashResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cashpilot_v1_cashpilot_proto_msgTypes[15]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EstimateSpendableCashResponse.ProtoReflect.Descriptor instead.
func (*EstimateSpendableCashResponse) Descriptor() ([]byte, []int) {
	return file_cashpilot_v1_cashpilot_proto_rawDescGZIP(), []int{15}
}

func (x *EstimateSpendableCashResponse) GetSpendableNow() string {
	if x != nil {
		return x.SpendableNow
	}
	return ""
}

func (x *EstimateSpendableCashResponse) GetExpectedCashAtNextPaycheck() string {
	if x != nil {
		return x.ExpectedCashAtNextPaycheck
	}
	return ""
}

func (x *EstimateSpendableCashResponse) GetNextPaycheckDate() *timestamppb.Timestamp {
	if x != nil {
		return x.NextPaycheckDate
	}
	return nil
}

func (x *EstimateSpendableCashResponse) GetNextPaycheckAmount() string {
	if x != nil {
		return x.NextPaycheckAmount
	}
	return ""
}

func (x *EstimateSpendableCashResponse) GetBreakdown() *SpendableBreakdown {
	if x != nil {
		return x.Breakdown
	}
	return nil
}

func (x *EstimateSpendableCashResponse) GetConservative() *ConservativeScenario {
	if x != nil {
		return x.Conservative
	}
	return nil
}

type ExpandRecurringScheduleRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	AnchorDate *timestamppb.Timestamp `protobuf:"bytes,1,opt,name=anchor_date,json=anchorDate,proto3" json:"anchor_date,omitempty"`
	Frequency  RecurringFrequency     `protobuf:"varint,2,opt,name=frequency,proto3,enum=cashpilot.v1.RecurringFrequency" json:"frequency,omitempty"`
	RangeStart *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=range_start,json=rangeStart,proto3" json:"range_start,omitempty"`
	RangeEnd   *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=range_end,json=rangeEnd,proto3" json:"range_end,omitempty"`
	Amount     string                 `protobuf:"bytes,5,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (x *ExpandRecurringScheduleRequest) Reset() {
	*x = ExpandRecurringScheduleRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_cashpilot_v1_cashpilot_proto_msgTypes[16]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ExpandRecurringScheduleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExpandRecurringScheduleRequest) ProtoMessage() {}

func (x *ExpandRecurringScheduleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cashpilot_v1_cashpilot_proto_msgTypes[16]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExpandRecurringScheduleRequest.ProtoReflect.Descriptor instead.
func (*ExpandRecurringScheduleRequest) Descriptor() ([]byte, []int) {
	return file_cashpilot_v1_cashpilot_proto_rawDescGZIP(), []int{16}
}

func (x *ExpandRecurringScheduleRequest) GetAnchorDate() *timestamppb.Timestamp {
	if x != nil {
		return x.AnchorDate
	}
	return nil
}

func (x *ExpandRecurringScheduleRequest) GetFrequency() RecurringFrequency {
	if x != nil {
		return x.Frequency
	}
	return RecurringFrequency_RECURRING_FREQUENCY_UNSPECIFIED
}

func (x *ExpandRecurringScheduleRequest) GetRangeStart() *timestamppb.Timestamp {
	if x != nil {
		return x.RangeStart
	}
	return nil
}

func (x *ExpandRecurringScheduleRequest) GetRangeEnd() *timestamppb.Timestamp {
	if x != nil {
		return x.RangeEnd
	}
	return nil
}

func (x *ExpandRecurringScheduleRequest) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

type ScheduleOccurrence struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Date   *timestamppb.Timestamp `protobuf:"bytes,1,opt,name=date,proto3" json:"date,omitempty"`
	Amount string                 `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (x *ScheduleOccurrence) Reset() {
	*x = ScheduleOccurrence{}
	if protoimpl.UnsafeEnabled {
		mi := &file_cashpilot_v1_cashpilot_proto_msgTypes[17]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ScheduleOccurrence) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScheduleOccurrence) ProtoMessage() {}

func (x *ScheduleOccurrence) ProtoReflect() protoreflect.Message {
	mi := &file_cashpilot_v1_cashpilot_proto_msgTypes[17]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScheduleOccurrence.ProtoReflect.Descriptor instead.
func (*ScheduleOccurrence) Descriptor() ([]byte, []int) {
	return file_cashpilot_v1_cashpilot_proto_rawDescGZIP(), []int{17}
}

func (x *ScheduleOccurrence) GetDate() *timestamppb.Timestamp {
	if x != nil {
		return x.Date
	}
	return nil
}

func (x *ScheduleOccurrence) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

type ExpandRecurringScheduleResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Occurrences []*ScheduleOccurrence `protobuf:"bytes,1,rep,name=occurrences,proto3" json:"occurrences,omitempty"`
}

func (x *ExpandRecurringScheduleResponse) Reset() {
	*x = ExpandRecurringScheduleResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_cashpilot_v1_cashpilot_proto_msgTypes[18]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ExpandRecurringScheduleResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExpandRecurringScheduleResponse) ProtoMessage() {}

func (x *ExpandRecurringScheduleResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cashpilot_v1_cashpilot_proto_msgTypes[18]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExpandRecurringScheduleResponse.ProtoReflect.Descriptor instead.
func (*ExpandRecurringScheduleResponse) Descriptor() ([]byte, []int) {
	return file_cashpilot_v1_cashpilot_proto_rawDescGZIP(), []int{18}
}

func (x *ExpandRecurringScheduleResponse) GetOccurrences() []*ScheduleOccurrence {
	if x != nil {
		return x.Occurrences
	}
	return nil
}

var File_cashpilot_v1_cashpilot_proto protoreflect.FileDescriptor

var file_cashpilot_v1_cashpilot_proto_rawDesc = []byte{
	0x0a, 0x1c, 0x63, 0x61, 0x73, 0x68, 0x70, 0x69, 0x6c, 0x6f, 0x74, 0x2f, 0x76, 0x31, 0x2f, 0x63,
	0x61, 0x73, 0x68, 0x70, 0x69, 0x6c, 0x6f, 0x74, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x12, 0x0c,
	0x63, 0x61, 0x73, 0x68, 0x70, 0x69, 0x6c, 0x6f, 0x74, 0x2e, 0x76, 0x31, 0x1a, 0x1f, 0x67, 0x6f,
	0x6f, 0x67, 0x6c, 0x65, 0x2f, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2f, 0x74, 0x69,
	0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x22, 0x76, 0x0a,
	0x22, 0x43, 0x61, 0x6c, 0x63, 0x75, 0x6c, 0x61, 0x74, 0x65, 0x53, 0x70, 0x65, 0x6e, 0x64, 0x69,
	0x6e, 0x67, 0x53, 0x74, 0x61, 0x74, 0x69, 0x73, 0x74, 0x69, 0x63, 0x73, 0x52, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x12, 0x2f, 0x0a, 0x05, 0x61, 0x73, 0x5f, 0x6f, 0x66, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74,
	0x6f, 0x62, 0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x04,
	0x61, 0x73, 0x4f, 0x66, 0x12, 0x1f, 0x0a, 0x0b, 0x77, 0x69, 0x6e, 0x64, 0x6f, 0x77, 0x5f, 0x64,
	0x61, 0x79, 0x73, 0x18, 0x02, 0x20, 0x03, 0x28, 0x05, 0x52, 0x0a, 0x77, 0x69, 0x6e, 0x64, 0x6f,
	0x77, 0x44, 0x61, 0x79, 0x73, 0x22, 0xd1, 0x02, 0x0a, 0x10, 0x57, 0x69, 0x6e, 0x64, 0x6f, 0x77,
	0x53, 0x74, 0x61, 0x74, 0x69, 0x73, 0x74, 0x69, 0x63, 0x73, 0x12, 0x1f, 0x0a, 0x0b, 0x77, 0x69,
	0x6e, 0x64, 0x6f, 0x77, 0x5f, 0x64, 0x61, 0x79, 0x73, 0x18, 0x01, 0x20, 0x01, 0x28, 0x05, 0x52,
	0x0a, 0x77, 0x69, 0x6e, 0x64, 0x6f, 0x77, 0x44, 0x61, 0x79, 0x73, 0x12, 0x2e, 0x0a, 0x13, 0x61,
	0x76, 0x65, 0x72, 0x61, 0x67, 0x65, 0x5f, 0x64, 0x61, 0x69, 0x6c, 0x79, 0x5f, 0x73, 0x70, 0x65,
	0x6e, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x11, 0x61, 0x76, 0x65, 0x72, 0x61, 0x67,
	0x65, 0x44, 0x61, 0x69, 0x6c, 0x79, 0x53, 0x70, 0x65, 0x6e, 0x64, 0x12, 0x2d, 0x0a, 0x13, 0x73,
	0x74, 0x64, 0x5f, 0x64, 0x65, 0x76, 0x5f, 0x64, 0x61, 0x69, 0x6c, 0x79, 0x5f, 0x73, 0x70, 0x65,
	0x6e, 0x64, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x10, 0x73, 0x74, 0x64, 0x44, 0x65, 0x76,
	0x44, 0x61, 0x69, 0x6c, 0x79, 0x53, 0x70, 0x65, 0x6e, 0x64, 0x12, 0x26, 0x0a, 0x0f, 0x6d, 0x69,
	0x6e, 0x5f, 0x64, 0x61, 0x69, 0x6c, 0x79, 0x5f, 0x73, 0x70, 0x65, 0x6e, 0x64, 0x18, 0x04, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x0d, 0x6d, 0x69, 0x6e, 0x44, 0x61, 0x69, 0x6c, 0x79, 0x53, 0x70, 0x65,
	0x6e, 0x64, 0x12, 0x26, 0x0a, 0x0f, 0x6d, 0x61, 0x78, 0x5f, 0x64, 0x61, 0x69, 0x6c, 0x79, 0x5f,
	0x73, 0x70, 0x65, 0x6e, 0x64, 0x18, 0x05, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0d, 0x6d, 0x61, 0x78,
	0x44, 0x61, 0x69, 0x6c, 0x79, 0x53, 0x70, 0x65, 0x6e, 0x64, 0x12, 0x23, 0x0a, 0x0d, 0x70, 0x65,
	0x72, 0x63, 0x65, 0x6e, 0x74, 0x69, 0x6c, 0x65, 0x5f, 0x32, 0x35, 0x18, 0x06, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x0c, 0x70, 0x65, 0x72, 0x63, 0x65, 0x6e, 0x74, 0x69, 0x6c, 0x65, 0x32, 0x35, 0x12,
	0x23, 0x0a, 0x0d, 0x70, 0x65, 0x72, 0x63, 0x65, 0x6e, 0x74, 0x69, 0x6c, 0x65, 0x5f, 0x37, 0x35,
	0x18, 0x07, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0c, 0x70, 0x65, 0x72, 0x63, 0x65, 0x6e, 0x74, 0x69,
	0x6c, 0x65, 0x37, 0x35, 0x12, 0x23, 0x0a, 0x0d, 0x70, 0x65, 0x72, 0x63, 0x65, 0x6e, 0x74, 0x69,
	0x6c, 0x65, 0x5f, 0x39, 0x30, 0x18, 0x08, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0c, 0x70, 0x65, 0x72,
	0x63, 0x65, 0x6e, 0x74, 0x69, 0x6c, 0x65, 0x39, 0x30, 0x22, 0x5f, 0x0a, 0x23, 0x43, 0x61, 0x6c,
	0x63, 0x75, 0x6c, 0x61, 0x74, 0x65, 0x53, 0x70, 0x65, 0x6e, 0x64, 0x69, 0x6e, 0x67, 0x53, 0x74,
	0x61, 0x74, 0x69, 0x73, 0x74, 0x69, 0x63, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65,
	0x12, 0x38, 0x0a, 0x07, 0x77, 0x69, 0x6e, 0x64, 0x6f, 0x77, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28,
	0x0b, 0x32, 0x1e, 0x2e, 0x63, 0x61, 0x73, 0x68, 0x70, 0x69, 0x6c, 0x6f, 0x74, 0x2e, 0x76, 0x31,
	0x2e, 0x57, 0x69, 0x6e, 0x64, 0x6f, 0x77, 0x53, 0x74, 0x61, 0x74, 0x69, 0x73, 0x74, 0x69, 0x63,
	0x73, 0x52, 0x07, 0x77, 0x69, 0x6e, 0x64, 0x6f, 0x77, 0x73, 0x22, 0xb8, 0x01, 0x0a, 0x19, 0x50,
	0x6c, 0x61, 0x6e, 0x44, 0x65, 0x62, 0x74, 0x41, 0x6c, 0x6c, 0x6f, 0x63, 0x61, 0x74, 0x69, 0x6f,
	0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x2c, 0x0a, 0x12, 0x65, 0x78, 0x74, 0x72,
	0x61, 0x5f, 0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x5f, 0x70, 0x6f, 0x6f, 0x6c, 0x18, 0x01,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x10, 0x65, 0x78, 0x74, 0x72, 0x61, 0x50, 0x61, 0x79, 0x6d, 0x65,
	0x6e, 0x74, 0x50, 0x6f, 0x6f, 0x6c, 0x12, 0x3c, 0x0a, 0x08, 0x73, 0x74, 0x72, 0x61, 0x74, 0x65,
	0x67, 0x79, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0e, 0x32, 0x20, 0x2e, 0x63, 0x61, 0x73, 0x68, 0x70,
	0x69, 0x6c, 0x6f, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x41, 0x6c, 0x6c, 0x6f, 0x63, 0x61, 0x74, 0x69,
	0x6f, 0x6e, 0x53, 0x74, 0x72, 0x61, 0x74, 0x65, 0x67, 0x79, 0x52, 0x08, 0x73, 0x74, 0x72, 0x61,
	0x74, 0x65, 0x67, 0x79, 0x12, 0x2f, 0x0a, 0x05, 0x61, 0x73, 0x5f, 0x6f, 0x66, 0x18, 0x03, 0x20,
	0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f,
	0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52,
	0x04, 0x61, 0x73, 0x4f, 0x66, 0x22, 0xca, 0x01, 0x0a, 0x0b, 0x44, 0x65, 0x62, 0x74, 0x50, 0x61,
	0x79, 0x6d, 0x65, 0x6e, 0x74, 0x12, 0x1b, 0x0a, 0x09, 0x64, 0x65, 0x62, 0x74, 0x5f, 0x6e, 0x61,
	0x6d, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x64, 0x65, 0x62, 0x74, 0x4e, 0x61,
	0x6d, 0x65, 0x12, 0x27, 0x0a, 0x0f, 0x6d, 0x69, 0x6e, 0x69, 0x6d, 0x75, 0x6d, 0x5f, 0x70, 0x61,
	0x79, 0x6d, 0x65, 0x6e, 0x74, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0e, 0x6d, 0x69, 0x6e,
	0x69, 0x6d, 0x75, 0x6d, 0x50, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x12, 0x23, 0x0a, 0x0d, 0x65,
	0x78, 0x74, 0x72, 0x61, 0x5f, 0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x18, 0x03, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x0c, 0x65, 0x78, 0x74, 0x72, 0x61, 0x50, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74,
	0x12, 0x23, 0x0a, 0x0d, 0x74, 0x6f, 0x74, 0x61, 0x6c, 0x5f, 0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e,
	0x74, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0c, 0x74, 0x6f, 0x74, 0x61, 0x6c, 0x50, 0x61,
	0x79, 0x6d, 0x65, 0x6e, 0x74, 0x12, 0x2b, 0x0a, 0x11, 0x72, 0x65, 0x6d, 0x61, 0x69, 0x6e, 0x69,
	0x6e, 0x67, 0x5f, 0x62, 0x61, 0x6c, 0x61, 0x6e, 0x63, 0x65, 0x18, 0x05, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x10, 0x72, 0x65, 0x6d, 0x61, 0x69, 0x6e, 0x69, 0x6e, 0x67, 0x42, 0x61, 0x6c, 0x61, 0x6e,
	0x63, 0x65, 0x22, 0xb6, 0x01, 0x0a, 0x1a, 0x50, 0x6c, 0x61, 0x6e, 0x44, 0x65, 0x62, 0x74, 0x41,
	0x6c, 0x6c, 0x6f, 0x63, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x12, 0x3c, 0x0a, 0x08, 0x73, 0x74, 0x72, 0x61, 0x74, 0x65, 0x67, 0x79, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x0e, 0x32, 0x20, 0x2e, 0x63, 0x61, 0x73, 0x68, 0x70, 0x69, 0x6c, 0x6f, 0x74, 0x2e,
	0x76, 0x31, 0x2e, 0x41, 0x6c, 0x6c, 0x6f, 0x63, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x53, 0x74, 0x72,
	0x61, 0x74, 0x65, 0x67, 0x79, 0x52, 0x08, 0x73, 0x74, 0x72, 0x61, 0x74, 0x65, 0x67, 0x79, 0x12,
	0x35, 0x0a, 0x08, 0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x18, 0x02, 0x20, 0x03, 0x28,
	0x0b, 0x32, 0x19, 0x2e, 0x63, 0x61, 0x73, 0x68, 0x70, 0x69, 0x6c, 0x6f, 0x74, 0x2e, 0x76, 0x31,
	0x2e, 0x44, 0x65, 0x62, 0x74, 0x50, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x52, 0x08, 0x70, 0x61,
	0x79, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x12, 0x23, 0x0a, 0x0d, 0x74, 0x6f, 0x74, 0x61, 0x6c, 0x5f,
	0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0c, 0x74,
	0x6f, 0x74, 0x61, 0x6c, 0x50, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x22, 0xb3, 0x01, 0x0a, 0x1c,
	0x52, 0x75, 0x6e, 0x43, 0x61, 0x73, 0x68, 0x44, 0x65, 0x62, 0x74, 0x53, 0x69, 0x6d, 0x75, 0x6c,
	0x61, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x39, 0x0a, 0x0a,
	0x73, 0x74, 0x61, 0x72, 0x74, 0x5f, 0x64, 0x61, 0x74, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b,
	0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62,
	0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x09, 0x73, 0x74,
	0x61, 0x72, 0x74, 0x44, 0x61, 0x74, 0x65, 0x12, 0x35, 0x0a, 0x08, 0x65, 0x6e, 0x64, 0x5f, 0x64,
	0x61, 0x74, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67,
	0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65,
	0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x07, 0x65, 0x6e, 0x64, 0x44, 0x61, 0x74, 0x65, 0x12, 0x21,
	0x0a, 0x0c, 0x69, 0x6e, 0x69, 0x74, 0x69, 0x61, 0x6c, 0x5f, 0x63, 0x61, 0x73, 0x68, 0x18, 0x03,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x0b, 0x69, 0x6e, 0x69, 0x74, 0x69, 0x61, 0x6c, 0x43, 0x61, 0x73,
	0x68, 0x22, 0xcb, 0x02, 0x0a, 0x0b, 0x44, 0x61, 0x79, 0x53, 0x6e, 0x61, 0x70, 0x73, 0x68, 0x6f,
	0x74, 0x12, 0x2e, 0x0a, 0x04, 0x64, 0x61, 0x74, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32,
	0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75,
	0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x04, 0x64, 0x61, 0x74,
	0x65, 0x12, 0x21, 0x0a, 0x0c, 0x63, 0x61, 0x73, 0x68, 0x5f, 0x62, 0x61, 0x6c, 0x61, 0x6e, 0x63,
	0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0b, 0x63, 0x61, 0x73, 0x68, 0x42, 0x61, 0x6c,
	0x61, 0x6e, 0x63, 0x65, 0x12, 0x50, 0x0a, 0x0d, 0x64, 0x65, 0x62, 0x74, 0x5f, 0x62, 0x61, 0x6c,
	0x61, 0x6e, 0x63, 0x65, 0x73, 0x18, 0x03, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x2b, 0x2e, 0x63, 0x61,
	0x73, 0x68, 0x70, 0x69, 0x6c, 0x6f, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x44, 0x61, 0x79, 0x53, 0x6e,
	0x61, 0x70, 0x73, 0x68, 0x6f, 0x74, 0x2e, 0x44, 0x65, 0x62, 0x74, 0x42, 0x61, 0x6c, 0x61, 0x6e,
	0x63, 0x65, 0x73, 0x45, 0x6e, 0x74, 0x72, 0x79, 0x52, 0x0c, 0x64, 0x65, 0x62, 0x74, 0x42, 0x61,
	0x6c, 0x61, 0x6e, 0x63, 0x65, 0x73, 0x12, 0x29, 0x0a, 0x10, 0x69, 0x6e, 0x74, 0x65, 0x72, 0x65,
	0x73, 0x74, 0x5f, 0x61, 0x63, 0x63, 0x72, 0x75, 0x65, 0x64, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x0f, 0x69, 0x6e, 0x74, 0x65, 0x72, 0x65, 0x73, 0x74, 0x41, 0x63, 0x63, 0x72, 0x75, 0x65,
	0x64, 0x12, 0x2b, 0x0a, 0x11, 0x65, 0x76, 0x65, 0x6e, 0x74, 0x5f, 0x64, 0x65, 0x73, 0x63, 0x72,
	0x69, 0x70, 0x74, 0x69, 0x6f, 0x6e, 0x18, 0x05, 0x20, 0x01, 0x28, 0x09, 0x52, 0x10, 0x65, 0x76,
	0x65, 0x6e, 0x74, 0x44, 0x65, 0x73, 0x63, 0x72, 0x69, 0x70, 0x74, 0x69, 0x6f, 0x6e, 0x1a, 0x3f,
	0x0a, 0x11, 0x44, 0x65, 0x62, 0x74, 0x42, 0x61, 0x6c, 0x61, 0x6e, 0x63, 0x65, 0x73, 0x45, 0x6e,
	0x74, 0x72, 0x79, 0x12, 0x10, 0x0a, 0x03, 0x6b, 0x65, 0x79, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x03, 0x6b, 0x65, 0x79, 0x12, 0x14, 0x0a, 0x05, 0x76, 0x61, 0x6c, 0x75, 0x65, 0x18, 0x02,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x76, 0x61, 0x6c, 0x75, 0x65, 0x3a, 0x02, 0x38, 0x01, 0x22,
	0xb2, 0x03, 0x0a, 0x1d, 0x52, 0x75, 0x6e, 0x43, 0x61, 0x73, 0x68, 0x44, 0x65, 0x62, 0x74, 0x53,
	0x69, 0x6d, 0x75, 0x6c, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x12, 0x37, 0x0a, 0x09, 0x73, 0x6e, 0x61, 0x70, 0x73, 0x68, 0x6f, 0x74, 0x73, 0x18, 0x01,
	0x20, 0x03, 0x28, 0x0b, 0x32, 0x19, 0x2e, 0x63, 0x61, 0x73, 0x68, 0x70, 0x69, 0x6c, 0x6f, 0x74,
	0x2e, 0x76, 0x31, 0x2e, 0x44, 0x61, 0x79, 0x53, 0x6e, 0x61, 0x70, 0x73, 0x68, 0x6f, 0x74, 0x52,
	0x09, 0x73, 0x6e, 0x61, 0x70, 0x73, 0x68, 0x6f, 0x74, 0x73, 0x12, 0x2c, 0x0a, 0x12, 0x66, 0x69,
	0x6e, 0x61, 0x6c, 0x5f, 0x63, 0x61, 0x73, 0x68, 0x5f, 0x62, 0x61, 0x6c, 0x61, 0x6e, 0x63, 0x65,
	0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x10, 0x66, 0x69, 0x6e, 0x61, 0x6c, 0x43, 0x61, 0x73,
	0x68, 0x42, 0x61, 0x6c, 0x61, 0x6e, 0x63, 0x65, 0x12, 0x72, 0x0a, 0x13, 0x66, 0x69, 0x6e, 0x61,
	0x6c, 0x5f, 0x64, 0x65, 0x62, 0x74, 0x5f, 0x62, 0x61, 0x6c, 0x61, 0x6e, 0x63, 0x65, 0x73, 0x18,
	0x03, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x42, 0x2e, 0x63, 0x61, 0x73, 0x68, 0x70, 0x69, 0x6c, 0x6f,
	0x74, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x75, 0x6e, 0x43, 0x61, 0x73, 0x68, 0x44, 0x65, 0x62, 0x74,
	0x53, 0x69, 0x6d, 0x75, 0x6c, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e,
	0x73, 0x65, 0x2e, 0x46, 0x69, 0x6e, 0x61, 0x6c, 0x44, 0x65, 0x62, 0x74, 0x42, 0x61, 0x6c, 0x61,
	0x6e, 0x63, 0x65, 0x73, 0x45, 0x6e, 0x74, 0x72, 0x79, 0x52, 0x11, 0x66, 0x69, 0x6e, 0x61, 0x6c,
	0x44, 0x65, 0x62, 0x74, 0x42, 0x61, 0x6c, 0x61, 0x6e, 0x63, 0x65, 0x73, 0x12, 0x2e, 0x0a, 0x13,
	0x74, 0x6f, 0x74, 0x61, 0x6c, 0x5f, 0x69, 0x6e, 0x74, 0x65, 0x72, 0x65, 0x73, 0x74, 0x5f, 0x70,
	0x61, 0x69, 0x64, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x11, 0x74, 0x6f, 0x74, 0x61, 0x6c,
	0x49, 0x6e, 0x74, 0x65, 0x72, 0x65, 0x73, 0x74, 0x50, 0x61, 0x69, 0x64, 0x12, 0x40, 0x0a, 0x0e,
	0x64, 0x65, 0x62, 0x74, 0x5f, 0x66, 0x72, 0x65, 0x65, 0x5f, 0x64, 0x61, 0x74, 0x65, 0x18, 0x05,
	0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72,
	0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70,
	0x52, 0x0c, 0x64, 0x65, 0x62, 0x74, 0x46, 0x72, 0x65, 0x65, 0x44, 0x61, 0x74, 0x65, 0x1a, 0x44,
	0x0a, 0x16, 0x46, 0x69, 0x6e, 0x61, 0x6c, 0x44, 0x65, 0x62, 0x74, 0x42, 0x61, 0x6c, 0x61, 0x6e,
	0x63, 0x65, 0x73, 0x45, 0x6e, 0x74, 0x72, 0x79, 0x12, 0x10, 0x0a, 0x03, 0x6b, 0x65, 0x79, 0x18,
	0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x03, 0x6b, 0x65, 0x79, 0x12, 0x14, 0x0a, 0x05, 0x76, 0x61,
	0x6c, 0x75, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x76, 0x61, 0x6c, 0x75, 0x65,
	0x3a, 0x02, 0x38, 0x01, 0x22, 0xa5, 0x02, 0x0a, 0x1e, 0x50, 0x72, 0x6f, 0x6a, 0x65, 0x63, 0x74,
	0x49, 0x6e, 0x76, 0x65, 0x73, 0x74, 0x6d, 0x65, 0x6e, 0x74, 0x47, 0x72, 0x6f, 0x77, 0x74, 0x68,
	0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x27, 0x0a, 0x0f, 0x69, 0x6e, 0x69, 0x74, 0x69,
	0x61, 0x6c, 0x5f, 0x62, 0x61, 0x6c, 0x61, 0x6e, 0x63, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x0e, 0x69, 0x6e, 0x69, 0x74, 0x69, 0x61, 0x6c, 0x42, 0x61, 0x6c, 0x61, 0x6e, 0x63, 0x65,
	0x12, 0x39, 0x0a, 0x0a, 0x73, 0x74, 0x61, 0x72, 0x74, 0x5f, 0x64, 0x61, 0x74, 0x65, 0x18, 0x02,
	0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72,
	0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70,
	0x52, 0x09, 0x73, 0x74, 0x61, 0x72, 0x74, 0x44, 0x61, 0x74, 0x65, 0x12, 0x35, 0x0a, 0x08, 0x65,
	0x6e, 0x64, 0x5f, 0x64, 0x61, 0x74, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e,
	0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e,
	0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x07, 0x65, 0x6e, 0x64, 0x44, 0x61,
	0x74, 0x65, 0x12, 0x23, 0x0a, 0x0d, 0x61, 0x6e, 0x6e, 0x75, 0x61, 0x6c, 0x5f, 0x72, 0x65, 0x74,
	0x75, 0x72, 0x6e, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0c, 0x61, 0x6e, 0x6e, 0x75, 0x61,
	0x6c, 0x52, 0x65, 0x74, 0x75, 0x72, 0x6e, 0x12, 0x29, 0x0a, 0x10, 0x61, 0x6e, 0x6e, 0x75, 0x61,
	0x6c, 0x5f, 0x69, 0x6e, 0x66, 0x6c, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x18, 0x05, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x0f, 0x61, 0x6e, 0x6e, 0x75, 0x61, 0x6c, 0x49, 0x6e, 0x66, 0x6c, 0x61, 0x74, 0x69,
	0x6f, 0x6e, 0x12, 0x18, 0x0a, 0x07, 0x6d, 0x6f, 0x6e, 0x74, 0x68, 0x6c, 0x79, 0x18, 0x06, 0x20,
	0x01, 0x28, 0x08, 0x52, 0x07, 0x6d, 0x6f, 0x6e, 0x74, 0x68, 0x6c, 0x79, 0x22, 0xfa, 0x01, 0x0a,
	0x0f, 0x50, 0x72, 0x6f, 0x6a, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x50, 0x6f, 0x69, 0x6e, 0x74,
	0x12, 0x2e, 0x0a, 0x04, 0x64, 0x61, 0x74, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a,
	0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66,
	0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x04, 0x64, 0x61, 0x74, 0x65,
	0x12, 0x23, 0x0a, 0x0d, 0x6e, 0x6f, 0x6d, 0x69, 0x6e, 0x61, 0x6c, 0x5f, 0x76, 0x61, 0x6c, 0x75,
	0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0c, 0x6e, 0x6f, 0x6d, 0x69, 0x6e, 0x61, 0x6c,
	0x56, 0x61, 0x6c, 0x75, 0x65, 0x12, 0x1d, 0x0a, 0x0a, 0x72, 0x65, 0x61, 0x6c, 0x5f, 0x76, 0x61,
	0x6c, 0x75, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x72, 0x65, 0x61, 0x6c, 0x56,
	0x61, 0x6c, 0x75, 0x65, 0x12, 0x2b, 0x0a, 0x11, 0x74, 0x6f, 0x74, 0x61, 0x6c, 0x5f, 0x63, 0x6f,
	0x6e, 0x74, 0x72, 0x69, 0x62, 0x75, 0x74, 0x65, 0x64, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x10, 0x74, 0x6f, 0x74, 0x61, 0x6c, 0x43, 0x6f, 0x6e, 0x74, 0x72, 0x69, 0x62, 0x75, 0x74, 0x65,
	0x64, 0x12, 0x25, 0x0a, 0x0e, 0x6e, 0x6f, 0x6d, 0x69, 0x6e, 0x61, 0x6c, 0x5f, 0x67, 0x72, 0x6f,
	0x77, 0x74, 0x68, 0x18, 0x05, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0d, 0x6e, 0x6f, 0x6d, 0x69, 0x6e,
	0x61, 0x6c, 0x47, 0x72, 0x6f, 0x77, 0x74, 0x68, 0x12, 0x1f, 0x0a, 0x0b, 0x72, 0x65, 0x61, 0x6c,
	0x5f, 0x67, 0x72, 0x6f, 0x77, 0x74, 0x68, 0x18, 0x06, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0a, 0x72,
	0x65, 0x61, 0x6c, 0x47, 0x72, 0x6f, 0x77, 0x74, 0x68, 0x22, 0xa7, 0x02, 0x0a, 0x1f, 0x50, 0x72,
	0x6f, 0x6a, 0x65, 0x63, 0x74, 0x49, 0x6e, 0x76, 0x65, 0x73, 0x74, 0x6d, 0x65, 0x6e, 0x74, 0x47,
	0x72, 0x6f, 0x77, 0x74, 0x68, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x35, 0x0a,
	0x06, 0x70, 0x6f, 0x69, 0x6e, 0x74, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x1d, 0x2e,
	0x63, 0x61, 0x73, 0x68, 0x70, 0x69, 0x6c, 0x6f, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x50, 0x72, 0x6f,
	0x6a, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x50, 0x6f, 0x69, 0x6e, 0x74, 0x52, 0x06, 0x70, 0x6f,
	0x69, 0x6e, 0x74, 0x73, 0x12, 0x2e, 0x0a, 0x13, 0x66, 0x69, 0x6e, 0x61, 0x6c, 0x5f, 0x6e, 0x6f,
	0x6d, 0x69, 0x6e, 0x61, 0x6c, 0x5f, 0x76, 0x61, 0x6c, 0x75, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x11, 0x66, 0x69, 0x6e, 0x61, 0x6c, 0x4e, 0x6f, 0x6d, 0x69, 0x6e, 0x61, 0x6c, 0x56,
	0x61, 0x6c, 0x75, 0x65, 0x12, 0x28, 0x0a, 0x10, 0x66, 0x69, 0x6e, 0x61, 0x6c, 0x5f, 0x72, 0x65,
	0x61, 0x6c, 0x5f, 0x76, 0x61, 0x6c, 0x75, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0e,
	0x66, 0x69, 0x6e, 0x61, 0x6c, 0x52, 0x65, 0x61, 0x6c, 0x56, 0x61, 0x6c, 0x75, 0x65, 0x12, 0x2b,
	0x0a, 0x11, 0x74, 0x6f, 0x74, 0x61, 0x6c, 0x5f, 0x63, 0x6f, 0x6e, 0x74, 0x72, 0x69, 0x62, 0x75,
	0x74, 0x65, 0x64, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x10, 0x74, 0x6f, 0x74, 0x61, 0x6c,
	0x43, 0x6f, 0x6e, 0x74, 0x72, 0x69, 0x62, 0x75, 0x74, 0x65, 0x64, 0x12, 0x25, 0x0a, 0x0e, 0x6e,
	0x6f, 0x6d, 0x69, 0x6e, 0x61, 0x6c, 0x5f, 0x67, 0x72, 0x6f, 0x77, 0x74, 0x68, 0x18, 0x05, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x0d, 0x6e, 0x6f, 0x6d, 0x69, 0x6e, 0x61, 0x6c, 0x47, 0x72, 0x6f, 0x77,
	0x74, 0x68, 0x12, 0x1f, 0x0a, 0x0b, 0x72, 0x65, 0x61, 0x6c, 0x5f, 0x67, 0x72, 0x6f, 0x77, 0x74,
	0x68, 0x18, 0x06, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0a, 0x72, 0x65, 0x61, 0x6c, 0x47, 0x72, 0x6f,
	0x77, 0x74, 0x68, 0x22, 0xcf, 0x01, 0x0a, 0x1c, 0x45, 0x73, 0x74, 0x69, 0x6d, 0x61, 0x74, 0x65,
	0x53, 0x70, 0x65, 0x6e, 0x64, 0x61, 0x62, 0x6c, 0x65, 0x43, 0x61, 0x73, 0x68, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x12, 0x25, 0x0a, 0x0e, 0x61, 0x76, 0x61, 0x69, 0x6c, 0x61, 0x62, 0x6c,
	0x65, 0x5f, 0x63, 0x61, 0x73, 0x68, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0d, 0x61, 0x76,
	0x61, 0x69, 0x6c, 0x61, 0x62, 0x6c, 0x65, 0x43, 0x61, 0x73, 0x68, 0x12, 0x2f, 0x0a, 0x05, 0x61,
	0x73, 0x5f, 0x6f, 0x66, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f,
	0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d,
	0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x04, 0x61, 0x73, 0x4f, 0x66, 0x12, 0x23, 0x0a, 0x0d,
	0x73, 0x61, 0x66, 0x65, 0x74, 0x79, 0x5f, 0x62, 0x75, 0x66, 0x66, 0x65, 0x72, 0x18, 0x03, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x0c, 0x73, 0x61, 0x66, 0x65, 0x74, 0x79, 0x42, 0x75, 0x66, 0x66, 0x65,
	0x72, 0x12, 0x32, 0x0a, 0x15, 0x65, 0x73, 0x74, 0x69, 0x6d, 0x61, 0x74, 0x65, 0x64, 0x5f, 0x64,
	0x61, 0x69, 0x6c, 0x79, 0x5f, 0x73, 0x70, 0x65, 0x6e, 0x64, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x13, 0x65, 0x73, 0x74, 0x69, 0x6d, 0x61, 0x74, 0x65, 0x64, 0x44, 0x61, 0x69, 0x6c, 0x79,
	0x53, 0x70, 0x65, 0x6e, 0x64, 0x22, 0xc7, 0x01, 0x0a, 0x12, 0x53, 0x70, 0x65, 0x6e, 0x64, 0x61,
	0x62, 0x6c, 0x65, 0x42, 0x72, 0x65, 0x61, 0x6b, 0x64, 0x6f, 0x77, 0x6e, 0x12, 0x27, 0x0a, 0x0f,
	0x6f, 0x62, 0x6c, 0x69, 0x67, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x5f, 0x64, 0x75, 0x65, 0x18,
	0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0e, 0x6f, 0x62, 0x6c, 0x69, 0x67, 0x61, 0x74, 0x69, 0x6f,
	0x6e, 0x73, 0x44, 0x75, 0x65, 0x12, 0x33, 0x0a, 0x15, 0x70, 0x6c, 0x61, 0x6e, 0x6e, 0x65, 0x64,
	0x5f, 0x63, 0x6f, 0x6e, 0x74, 0x72, 0x69, 0x62, 0x75, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x18, 0x02,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x14, 0x70, 0x6c, 0x61, 0x6e, 0x6e, 0x65, 0x64, 0x43, 0x6f, 0x6e,
	0x74, 0x72, 0x69, 0x62, 0x75, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x12, 0x23, 0x0a, 0x0d, 0x73, 0x61,
	0x66, 0x65, 0x74, 0x79, 0x5f, 0x62, 0x75, 0x66, 0x66, 0x65, 0x72, 0x18, 0x03, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x0c, 0x73, 0x61, 0x66, 0x65, 0x74, 0x79, 0x42, 0x75, 0x66, 0x66, 0x65, 0x72, 0x12,
	0x2e, 0x0a, 0x13, 0x64, 0x61, 0x79, 0x73, 0x5f, 0x75, 0x6e, 0x74, 0x69, 0x6c, 0x5f, 0x70, 0x61,
	0x79, 0x63, 0x68, 0x65, 0x63, 0x6b, 0x18, 0x04, 0x20, 0x01, 0x28, 0x05, 0x52, 0x11, 0x64, 0x61,
	0x79, 0x73, 0x55, 0x6e, 0x74, 0x69, 0x6c, 0x50, 0x61, 0x79, 0x63, 0x68, 0x65, 0x63, 0x6b, 0x22,
	0xd8, 0x01, 0x0a, 0x14, 0x43, 0x6f, 0x6e, 0x73, 0x65, 0x72, 0x76, 0x61, 0x74, 0x69, 0x76, 0x65,
	0x53, 0x63, 0x65, 0x6e, 0x61, 0x72, 0x69, 0x6f, 0x12, 0x32, 0x0a, 0x15, 0x65, 0x73, 0x74, 0x69,
	0x6d, 0x61, 0x74, 0x65, 0x64, 0x5f, 0x64, 0x61, 0x69, 0x6c, 0x79, 0x5f, 0x73, 0x70, 0x65, 0x6e,
	0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x13, 0x65, 0x73, 0x74, 0x69, 0x6d, 0x61, 0x74,
	0x65, 0x64, 0x44, 0x61, 0x69, 0x6c, 0x79, 0x53, 0x70, 0x65, 0x6e, 0x64, 0x12, 0x23, 0x0a, 0x0d,
	0x73, 0x61, 0x66, 0x65, 0x74, 0x79, 0x5f, 0x62, 0x75, 0x66, 0x66, 0x65, 0x72, 0x18, 0x02, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x0c, 0x73, 0x61, 0x66, 0x65, 0x74, 0x79, 0x42, 0x75, 0x66, 0x66, 0x65,
	0x72, 0x12, 0x23, 0x0a, 0x0d, 0x73, 0x70, 0x65, 0x6e, 0x64, 0x61, 0x62, 0x6c, 0x65, 0x5f, 0x6e,
	0x6f, 0x77, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0c, 0x73, 0x70, 0x65, 0x6e, 0x64, 0x61,
	0x62, 0x6c, 0x65, 0x4e, 0x6f, 0x77, 0x12, 0x42, 0x0a, 0x1e, 0x65, 0x78, 0x70, 0x65, 0x63, 0x74,
	0x65, 0x64, 0x5f, 0x63, 0x61, 0x73, 0x68, 0x5f, 0x61, 0x74, 0x5f, 0x6e, 0x65, 0x78, 0x74, 0x5f,
	0x70, 0x61, 0x79, 0x63, 0x68, 0x65, 0x63, 0x6b, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x1a,
	0x65, 0x78, 0x70, 0x65, 0x63, 0x74, 0x65, 0x64, 0x43, 0x61, 0x73, 0x68, 0x41, 0x74, 0x4e, 0x65,
	0x78, 0x74, 0x50, 0x61, 0x79, 0x63, 0x68, 0x65, 0x63, 0x6b, 0x22, 0x8c, 0x03, 0x0a, 0x1d, 0x45,
	0x73, 0x74, 0x69, 0x6d, 0x61, 0x74, 0x65, 0x53, 0x70, 0x65, 0x6e, 0x64, 0x61, 0x62, 0x6c, 0x65,
	0x43, 0x61, 0x73, 0x68, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x23, 0x0a, 0x0d,
	0x73, 0x70, 0x65, 0x6e, 0x64, 0x61, 0x62, 0x6c, 0x65, 0x5f, 0x6e, 0x6f, 0x77, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x0c, 0x73, 0x70, 0x65, 0x6e, 0x64, 0x61, 0x62, 0x6c, 0x65, 0x4e, 0x6f,
	0x77, 0x12, 0x42, 0x0a, 0x1e, 0x65, 0x78, 0x70, 0x65, 0x63, 0x74, 0x65, 0x64, 0x5f, 0x63, 0x61,
	0x73, 0x68, 0x5f, 0x61, 0x74, 0x5f, 0x6e, 0x65, 0x78, 0x74, 0x5f, 0x70, 0x61, 0x79, 0x63, 0x68,
	0x65, 0x63, 0x6b, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x1a, 0x65, 0x78, 0x70, 0x65, 0x63,
	0x74, 0x65, 0x64, 0x43, 0x61, 0x73, 0x68, 0x41, 0x74, 0x4e, 0x65, 0x78, 0x74, 0x50, 0x61, 0x79,
	0x63, 0x68, 0x65, 0x63, 0x6b, 0x12, 0x48, 0x0a, 0x12, 0x6e, 0x65, 0x78, 0x74, 0x5f, 0x70, 0x61,
	0x79, 0x63, 0x68, 0x65, 0x63, 0x6b, 0x5f, 0x64, 0x61, 0x74, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28,
	0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f,
	0x62, 0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x10, 0x6e,
	0x65, 0x78, 0x74, 0x50, 0x61, 0x79, 0x63, 0x68, 0x65, 0x63, 0x6b, 0x44, 0x61, 0x74, 0x65, 0x12,
	0x30, 0x0a, 0x14, 0x6e, 0x65, 0x78, 0x74, 0x5f, 0x70, 0x61, 0x79, 0x63, 0x68, 0x65, 0x63, 0x6b,
	0x5f, 0x61, 0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x12, 0x6e,
	0x65, 0x78, 0x74, 0x50, 0x61, 0x79, 0x63, 0x68, 0x65, 0x63, 0x6b, 0x41, 0x6d, 0x6f, 0x75, 0x6e,
	0x74, 0x12, 0x3e, 0x0a, 0x09, 0x62, 0x72, 0x65, 0x61, 0x6b, 0x64, 0x6f, 0x77, 0x6e, 0x18, 0x05,
	0x20, 0x01, 0x28, 0x0b, 0x32, 0x20, 0x2e, 0x63, 0x61, 0x73, 0x68, 0x70, 0x69, 0x6c, 0x6f, 0x74,
	0x2e, 0x76, 0x31, 0x2e, 0x53, 0x70, 0x65, 0x6e, 0x64, 0x61, 0x62, 0x6c, 0x65, 0x42, 0x72, 0x65,
	0x61, 0x6b, 0x64, 0x6f, 0x77, 0x6e, 0x52, 0x09, 0x62, 0x72, 0x65, 0x61, 0x6b, 0x64, 0x6f, 0x77,
	0x6e, 0x12, 0x46, 0x0a, 0x0c, 0x63, 0x6f, 0x6e, 0x73, 0x65, 0x72, 0x76, 0x61, 0x74, 0x69, 0x76,
	0x65, 0x18, 0x06, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x22, 0x2e, 0x63, 0x61, 0x73, 0x68, 0x70, 0x69,
	0x6c, 0x6f, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x6f, 0x6e, 0x73, 0x65, 0x72, 0x76, 0x61, 0x74,
	0x69, 0x76, 0x65, 0x53, 0x63, 0x65, 0x6e, 0x61, 0x72, 0x69, 0x6f, 0x52, 0x0c, 0x63, 0x6f, 0x6e,
	0x73, 0x65, 0x72, 0x76, 0x61, 0x74, 0x69, 0x76, 0x65, 0x22, 0xab, 0x02, 0x0a, 0x1e, 0x45, 0x78,
	0x70, 0x61, 0x6e, 0x64, 0x52, 0x65, 0x63, 0x75, 0x72, 0x72, 0x69, 0x6e, 0x67, 0x53, 0x63, 0x68,
	0x65, 0x64, 0x75, 0x6c, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x3b, 0x0a, 0x0b,
	0x61, 0x6e, 0x63, 0x68, 0x6f, 0x72, 0x5f, 0x64, 0x61, 0x74, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f,
	0x62, 0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x0a, 0x61,
	0x6e, 0x63, 0x68, 0x6f, 0x72, 0x44, 0x61, 0x74, 0x65, 0x12, 0x3e, 0x0a, 0x09, 0x66, 0x72, 0x65,
	0x71, 0x75, 0x65, 0x6e, 0x63, 0x79, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0e, 0x32, 0x20, 0x2e, 0x63,
	0x61, 0x73, 0x68, 0x70, 0x69, 0x6c, 0x6f, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x65, 0x63, 0x75,
	0x72, 0x72, 0x69, 0x6e, 0x67, 0x46, 0x72, 0x65, 0x71, 0x75, 0x65, 0x6e, 0x63, 0x79, 0x52, 0x09,
	0x66, 0x72, 0x65, 0x71, 0x75, 0x65, 0x6e, 0x63, 0x79, 0x12, 0x3b, 0x0a, 0x0b, 0x72, 0x61, 0x6e,
	0x67, 0x65, 0x5f, 0x73, 0x74, 0x61, 0x72, 0x74, 0x18, 0x03, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a,
	0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66,
	0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x0a, 0x72, 0x61, 0x6e, 0x67,
	0x65, 0x53, 0x74, 0x61, 0x72, 0x74, 0x12, 0x37, 0x0a, 0x09, 0x72, 0x61, 0x6e, 0x67, 0x65, 0x5f,
	0x65, 0x6e, 0x64, 0x18, 0x04, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67,
	0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65,
	0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x08, 0x72, 0x61, 0x6e, 0x67, 0x65, 0x45, 0x6e, 0x64, 0x12,
	0x16, 0x0a, 0x06, 0x61, 0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x05, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x06, 0x61, 0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x22, 0x5c, 0x0a, 0x12, 0x53, 0x63, 0x68, 0x65, 0x64,
	0x75, 0x6c, 0x65, 0x4f, 0x63, 0x63, 0x75, 0x72, 0x72, 0x65, 0x6e, 0x63, 0x65, 0x12, 0x2e, 0x0a,
	0x04, 0x64, 0x61, 0x74, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f,
	0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x54, 0x69,
	0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x04, 0x64, 0x61, 0x74, 0x65, 0x12, 0x16, 0x0a,
	0x06, 0x61, 0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x61,
	0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x22, 0x65, 0x0a, 0x1f, 0x45, 0x78, 0x70, 0x61, 0x6e, 0x64, 0x52,
	0x65, 0x63, 0x75, 0x72, 0x72, 0x69, 0x6e, 0x67, 0x53, 0x63, 0x68, 0x65, 0x64, 0x75, 0x6c, 0x65,
	0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x42, 0x0a, 0x0b, 0x6f, 0x63, 0x63, 0x75,
	0x72, 0x72, 0x65, 0x6e, 0x63, 0x65, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x20, 0x2e,
	0x63, 0x61, 0x73, 0x68, 0x70, 0x69, 0x6c, 0x6f, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x63, 0x68,
	0x65, 0x64, 0x75, 0x6c, 0x65, 0x4f, 0x63, 0x63, 0x75, 0x72, 0x72, 0x65, 0x6e, 0x63, 0x65, 0x52,
	0x0b, 0x6f, 0x63, 0x63, 0x75, 0x72, 0x72, 0x65, 0x6e, 0x63, 0x65, 0x73, 0x2a, 0x9e, 0x01, 0x0a,
	0x12, 0x41, 0x6c, 0x6c, 0x6f, 0x63, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x53, 0x74, 0x72, 0x61, 0x74,
	0x65, 0x67, 0x79, 0x12, 0x23, 0x0a, 0x1f, 0x41, 0x4c, 0x4c, 0x4f, 0x43, 0x41, 0x54, 0x49, 0x4f,
	0x4e, 0x5f, 0x53, 0x54, 0x52, 0x41, 0x54, 0x45, 0x47, 0x59, 0x5f, 0x55, 0x4e, 0x53, 0x50, 0x45,
	0x43, 0x49, 0x46, 0x49, 0x45, 0x44, 0x10, 0x00, 0x12, 0x21, 0x0a, 0x1d, 0x41, 0x4c, 0x4c, 0x4f,
	0x43, 0x41, 0x54, 0x49, 0x4f, 0x4e, 0x5f, 0x53, 0x54, 0x52, 0x41, 0x54, 0x45, 0x47, 0x59, 0x5f,
	0x41, 0x56, 0x41, 0x4c, 0x41, 0x4e, 0x43, 0x48, 0x45, 0x10, 0x01, 0x12, 0x20, 0x0a, 0x1c, 0x41,
	0x4c, 0x4c, 0x4f, 0x43, 0x41, 0x54, 0x49, 0x4f, 0x4e, 0x5f, 0x53, 0x54, 0x52, 0x41, 0x54, 0x45,
	0x47, 0x59, 0x5f, 0x53, 0x4e, 0x4f, 0x57, 0x42, 0x41, 0x4c, 0x4c, 0x10, 0x02, 0x12, 0x1e, 0x0a,
	0x1a, 0x41, 0x4c, 0x4c, 0x4f, 0x43, 0x41, 0x54, 0x49, 0x4f, 0x4e, 0x5f, 0x53, 0x54, 0x52, 0x41,
	0x54, 0x45, 0x47, 0x59, 0x5f, 0x48, 0x59, 0x42, 0x52, 0x49, 0x44, 0x10, 0x03, 0x2a, 0x86, 0x02,
	0x0a, 0x12, 0x52, 0x65, 0x63, 0x75, 0x72, 0x72, 0x69, 0x6e, 0x67, 0x46, 0x72, 0x65, 0x71, 0x75,
	0x65, 0x6e, 0x63, 0x79, 0x12, 0x23, 0x0a, 0x1f, 0x52, 0x45, 0x43, 0x55, 0x52, 0x52, 0x49, 0x4e,
	0x47, 0x5f, 0x46, 0x52, 0x45, 0x51, 0x55, 0x45, 0x4e, 0x43, 0x59, 0x5f, 0x55, 0x4e, 0x53, 0x50,
	0x45, 0x43, 0x49, 0x46, 0x49, 0x45, 0x44, 0x10, 0x00, 0x12, 0x1e, 0x0a, 0x1a, 0x52, 0x45, 0x43,
	0x55, 0x52, 0x52, 0x49, 0x4e, 0x47, 0x5f, 0x46, 0x52, 0x45, 0x51, 0x55, 0x45, 0x4e, 0x43, 0x59,
	0x5f, 0x57, 0x45, 0x45, 0x4b, 0x4c, 0x59, 0x10, 0x01, 0x12, 0x20, 0x0a, 0x1c, 0x52, 0x45, 0x43,
	0x55, 0x52, 0x52, 0x49, 0x4e, 0x47, 0x5f, 0x46, 0x52, 0x45, 0x51, 0x55, 0x45, 0x4e, 0x43, 0x59,
	0x5f, 0x42, 0x49, 0x57, 0x45, 0x45, 0x4b, 0x4c, 0x59, 0x10, 0x02, 0x12, 0x23, 0x0a, 0x1f, 0x52,
	0x45, 0x43, 0x55, 0x52, 0x52, 0x49, 0x4e, 0x47, 0x5f, 0x46, 0x52, 0x45, 0x51, 0x55, 0x45, 0x4e,
	0x43, 0x59, 0x5f, 0x53, 0x45, 0x4d, 0x49, 0x4d, 0x4f, 0x4e, 0x54, 0x48, 0x4c, 0x59, 0x10, 0x03,
	0x12, 0x1f, 0x0a, 0x1b, 0x52, 0x45, 0x43, 0x55, 0x52, 0x52, 0x49, 0x4e, 0x47, 0x5f, 0x46, 0x52,
	0x45, 0x51, 0x55, 0x45, 0x4e, 0x43, 0x59, 0x5f, 0x4d, 0x4f, 0x4e, 0x54, 0x48, 0x4c, 0x59, 0x10,
	0x04, 0x12, 0x21, 0x0a, 0x1d, 0x52, 0x45, 0x43, 0x55, 0x52, 0x52, 0x49, 0x4e, 0x47, 0x5f, 0x46,
	0x52, 0x45, 0x51, 0x55, 0x45, 0x4e, 0x43, 0x59, 0x5f, 0x51, 0x55, 0x41, 0x52, 0x54, 0x45, 0x52,
	0x4c, 0x59, 0x10, 0x05, 0x12, 0x20, 0x0a, 0x1c, 0x52, 0x45, 0x43, 0x55, 0x52, 0x52, 0x49, 0x4e,
	0x47, 0x5f, 0x46, 0x52, 0x45, 0x51, 0x55, 0x45, 0x4e, 0x43, 0x59, 0x5f, 0x41, 0x4e, 0x4e, 0x55,
	0x41, 0x4c, 0x4c, 0x59, 0x10, 0x06, 0x32, 0xd4, 0x05, 0x0a, 0x10, 0x43, 0x61, 0x73, 0x68, 0x50,
	0x69, 0x6c, 0x6f, 0x74, 0x53, 0x65, 0x72, 0x76, 0x69, 0x63, 0x65, 0x12, 0x82, 0x01, 0x0a, 0x1b,
	0x43, 0x61, 0x6c, 0x63, 0x75, 0x6c, 0x61, 0x74, 0x65, 0x53, 0x70, 0x65, 0x6e, 0x64, 0x69, 0x6e,
	0x67, 0x53, 0x74, 0x61, 0x74, 0x69, 0x73, 0x74, 0x69, 0x63, 0x73, 0x12, 0x30, 0x2e, 0x63, 0x61,
	0x73, 0x68, 0x70, 0x69, 0x6c, 0x6f, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x61, 0x6c, 0x63, 0x75,
	0x6c, 0x61, 0x74, 0x65, 0x53, 0x70, 0x65, 0x6e, 0x64, 0x69, 0x6e, 0x67, 0x53, 0x74, 0x61, 0x74,
	0x69, 0x73, 0x74, 0x69, 0x63, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x31, 0x2e,
	0x63, 0x61, 0x73, 0x68, 0x70, 0x69, 0x6c, 0x6f, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x61, 0x6c,
	0x63, 0x75, 0x6c, 0x61, 0x74, 0x65, 0x53, 0x70, 0x65, 0x6e, 0x64, 0x69, 0x6e, 0x67, 0x53, 0x74,
	0x61, 0x74, 0x69, 0x73, 0x74, 0x69, 0x63, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65,
	0x12, 0x67, 0x0a, 0x12, 0x50, 0x6c, 0x61, 0x6e, 0x44, 0x65, 0x62, 0x74, 0x41, 0x6c, 0x6c, 0x6f,
	0x63, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x27, 0x2e, 0x63, 0x61, 0x73, 0x68, 0x70, 0x69, 0x6c,
	0x6f, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x50, 0x6c, 0x61, 0x6e, 0x44, 0x65, 0x62, 0x74, 0x41, 0x6c,
	0x6c, 0x6f, 0x63, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a,
	0x28, 0x2e, 0x63, 0x61, 0x73, 0x68, 0x70, 0x69, 0x6c, 0x6f, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x50,
	0x6c, 0x61, 0x6e, 0x44, 0x65, 0x62, 0x74, 0x41, 0x6c, 0x6c, 0x6f, 0x63, 0x61, 0x74, 0x69, 0x6f,
	0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x70, 0x0a, 0x15, 0x52, 0x75, 0x6e,
	0x43, 0x61, 0x73, 0x68, 0x44, 0x65, 0x62, 0x74, 0x53, 0x69, 0x6d, 0x75, 0x6c, 0x61, 0x74, 0x69,
	0x6f, 0x6e, 0x12, 0x2a, 0x2e, 0x63, 0x61, 0x73, 0x68, 0x70, 0x69, 0x6c, 0x6f, 0x74, 0x2e, 0x76,
	0x31, 0x2e, 0x52, 0x75, 0x6e, 0x43, 0x61, 0x73, 0x68, 0x44, 0x65, 0x62, 0x74, 0x53, 0x69, 0x6d,
	0x75, 0x6c, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x2b,
	0x2e, 0x63, 0x61, 0x73, 0x68, 0x70, 0x69, 0x6c, 0x6f, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x75,
	0x6e, 0x43, 0x61, 0x73, 0x68, 0x44, 0x65, 0x62, 0x74, 0x53, 0x69, 0x6d, 0x75, 0x6c, 0x61, 0x74,
	0x69, 0x6f, 0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x76, 0x0a, 0x17, 0x50,
	0x72, 0x6f, 0x6a, 0x65, 0x63, 0x74, 0x49, 0x6e, 0x76, 0x65, 0x73, 0x74, 0x6d, 0x65, 0x6e, 0x74,
	0x47, 0x72, 0x6f, 0x77, 0x74, 0x68, 0x12, 0x2c, 0x2e, 0x63, 0x61, 0x73, 0x68, 0x70, 0x69, 0x6c,
	0x6f, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x50, 0x72, 0x6f, 0x6a, 0x65, 0x63, 0x74, 0x49, 0x6e, 0x76,
	0x65, 0x73, 0x74, 0x6d, 0x65, 0x6e, 0x74, 0x47, 0x72, 0x6f, 0x77, 0x74, 0x68, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x1a, 0x2d, 0x2e, 0x63, 0x61, 0x73, 0x68, 0x70, 0x69, 0x6c, 0x6f, 0x74,
	0x2e, 0x76, 0x31, 0x2e, 0x50, 0x72, 0x6f, 0x6a, 0x65, 0x63, 0x74, 0x49, 0x6e, 0x76, 0x65, 0x73,
	0x74, 0x6d, 0x65, 0x6e, 0x74, 0x47, 0x72, 0x6f, 0x77, 0x74, 0x68, 0x52, 0x65, 0x73, 0x70, 0x6f,
	0x6e, 0x73, 0x65, 0x12, 0x70, 0x0a, 0x15, 0x45, 0x73, 0x74, 0x69, 0x6d, 0x61, 0x74, 0x65, 0x53,
	0x70, 0x65, 0x6e, 0x64, 0x61, 0x62, 0x6c, 0x65, 0x43, 0x61, 0x73, 0x68, 0x12, 0x2a, 0x2e, 0x63,
	0x61, 0x73, 0x68, 0x70, 0x69, 0x6c, 0x6f, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x45, 0x73, 0x74, 0x69,
	0x6d, 0x61, 0x74, 0x65, 0x53, 0x70, 0x65, 0x6e, 0x64, 0x61, 0x62, 0x6c, 0x65, 0x43, 0x61, 0x73,
	0x68, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x2b, 0x2e, 0x63, 0x61, 0x73, 0x68, 0x70,
	0x69, 0x6c, 0x6f, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x45, 0x73, 0x74, 0x69, 0x6d, 0x61, 0x74, 0x65,
	0x53, 0x70, 0x65, 0x6e, 0x64, 0x61, 0x62, 0x6c, 0x65, 0x43, 0x61, 0x73, 0x68, 0x52, 0x65, 0x73,
	0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x76, 0x0a, 0x17, 0x45, 0x78, 0x70, 0x61, 0x6e, 0x64, 0x52,
	0x65, 0x63, 0x75, 0x72, 0x72, 0x69, 0x6e, 0x67, 0x53, 0x63, 0x68, 0x65, 0x64, 0x75, 0x6c, 0x65,
	0x12, 0x2c, 0x2e, 0x63, 0x61, 0x73, 0x68, 0x70, 0x69, 0x6c, 0x6f, 0x74, 0x2e, 0x76, 0x31, 0x2e,
	0x45, 0x78, 0x70, 0x61, 0x6e, 0x64, 0x52, 0x65, 0x63, 0x75, 0x72, 0x72, 0x69, 0x6e, 0x67, 0x53,
	0x63, 0x68, 0x65, 0x64, 0x75, 0x6c, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x2d,
	0x2e, 0x63, 0x61, 0x73, 0x68, 0x70, 0x69, 0x6c, 0x6f, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x45, 0x78,
	0x70, 0x61, 0x6e, 0x64, 0x52, 0x65, 0x63, 0x75, 0x72, 0x72, 0x69, 0x6e, 0x67, 0x53, 0x63, 0x68,
	0x65, 0x64, 0x75, 0x6c, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x42, 0x55, 0x5a,
	0x53, 0x67, 0x69, 0x74, 0x68, 0x75, 0x62, 0x2e, 0x63, 0x6f, 0x6d, 0x2f, 0x6d, 0x66, 0x61, 0x6c,
	0x63, 0x61, 0x6f, 0x2f, 0x63, 0x61, 0x73, 0x68, 0x70, 0x69, 0x6c, 0x6f, 0x74, 0x2d, 0x62, 0x61,
	0x63, 0x6b, 0x65, 0x6e, 0x64, 0x2f, 0x69, 0x6e, 0x74, 0x65, 0x72, 0x6e, 0x61, 0x6c, 0x2f, 0x61,
	0x64, 0x61, 0x70, 0x74, 0x65, 0x72, 0x2f, 0x67, 0x72, 0x70, 0x63, 0x2f, 0x63, 0x61, 0x73, 0x68,
	0x70, 0x69, 0x6c, 0x6f, 0x74, 0x2f, 0x76, 0x31, 0x3b, 0x63, 0x61, 0x73, 0x68, 0x70, 0x69, 0x6c,
	0x6f, 0x74, 0x76, 0x31, 0x62, 0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
}

var (
	file_cashpilot_v1_cashpilot_proto_rawDescOnce sync.Once
	file_cashpilot_v1_cashpilot_proto_rawDescData = file_cashpilot_v1_cashpilot_proto_rawDesc
)

func file_cashpilot_v1_cashpilot_proto_rawDescGZIP() []byte {
	file_cashpilot_v1_cashpilot_proto_rawDescOnce.Do(func() {
		file_cashpilot_v1_cashpilot_proto_rawDescData = protoimpl.X.CompressGZIP(file_cashpilot_v1_cashpilot_proto_rawDescData)
	})
	return file_cashpilot_v1_cashpilot_proto_rawDescData
}

var file_cashpilot_v1_cashpilot_proto_enumTypes = make([]protoimpl.EnumInfo, 2)
var file_cashpilot_v1_cashpilot_proto_msgTypes = make([]protoimpl.MessageInfo, 21)
var file_cashpilot_v1_cashpilot_proto_goTypes = []any{
	(AllocationStrategy)(0),                     // 0: cashpilot.v1.AllocationStrategy
	(RecurringFrequency)(0),                     // 1: cashpilot.v1.RecurringFrequency
	(*CalculateSpendingStatisticsRequest)(nil),  // 2: cashpilot.v1.CalculateSpendingStatisticsRequest
	(*WindowStatistics)(nil),                    // 3: cashpilot.v1.WindowStatistics
	(*CalculateSpendingStatisticsResponse)(nil), // 4: cashpilot.v1.CalculateSpendingStatisticsResponse
	(*PlanDebtAllocationRequest)(nil),           // 5: cashpilot.v1.PlanDebtAllocationRequest
	(*DebtPayment)(nil),                         // 6: cashpilot.v1.DebtPayment
	(*PlanDebtAllocationResponse)(nil),          // 7: cashpilot.v1.PlanDebtAllocationResponse
	(*RunCashDebtSimulationRequest)(nil),        // 8: cashpilot.v1.RunCashDebtSimulationRequest
	(*DaySnapshot)(nil),                         // 9: cashpilot.v1.DaySnapshot
	(*RunCashDebtSimulationResponse)(nil),       // 10: cashpilot.v1.RunCashDebtSimulationResponse
	(*ProjectInvestmentGrowthRequest)(nil),      // 11: cashpilot.v1.ProjectInvestmentGrowthRequest
	(*ProjectionPoint)(nil),                     // 12: cashpilot.v1.ProjectionPoint
	(*ProjectInvestmentGrowthResponse)(nil),     // 13: cashpilot.v1.ProjectInvestmentGrowthResponse
	(*EstimateSpendableCashRequest)(nil),        // 14: cashpilot.v1.EstimateSpendableCashRequest
	(*SpendableBreakdown)(nil),                  // 15: cashpilot.v1.SpendableBreakdown
	(*ConservativeScenario)(nil),                // 16: cashpilot.v1.ConservativeScenario
	(*EstimateSpendableCashResponse)(nil),       // 17: cashpilot.v1.EstimateSpendableCashResponse
	(*ExpandRecurringScheduleRequest)(nil),      // 18: cashpilot.v1.ExpandRecurringScheduleRequest
	(*ScheduleOccurrence)(nil),                  // 19: cashpilot.v1.ScheduleOccurrence
	(*ExpandRecurringScheduleResponse)(nil),     // 20: cashpilot.v1.ExpandRecurringScheduleResponse
	nil,                                         // 21: cashpilot.v1.DaySnapshot.DebtBalancesEntry
	nil,                                         // 22: cashpilot.v1.RunCashDebtSimulationResponse.FinalDebtBalancesEntry
	(*timestamppb.Timestamp)(nil),               // 23: google.protobuf.Timestamp
}
var file_cashpilot_v1_cashpilot_proto_depIdxs = []int32{
	23, // 0: cashpilot.v1.CalculateSpendingStatisticsRequest.as_of:type_name -> google.protobuf.Timestamp
	3,  // 1: cashpilot.v1.CalculateSpendingStatisticsResponse.windows:type_name -> cashpilot.v1.WindowStatistics
	0,  // 2: cashpilot.v1.PlanDebtAllocationRequest.strategy:type_name -> cashpilot.v1.AllocationStrategy
	23, // 3: cashpilot.v1.PlanDebtAllocationRequest.as_of:type_name -> google.protobuf.Timestamp
	0,  // 4: cashpilot.v1.PlanDebtAllocationResponse.strategy:type_name -> cashpilot.v1.AllocationStrategy
	6,  // 5: cashpilot.v1.PlanDebtAllocationResponse.payments:type_name -> cashpilot.v1.DebtPayment
	23, // 6: cashpilot.v1.RunCashDebtSimulationRequest.start_date:type_name -> google.protobuf.Timestamp
	23, // 7: cashpilot.v1.RunCashDebtSimulationRequest.end_date:type_name -> google.protobuf.Timestamp
	23, // 8: cashpilot.v1.DaySnapshot.date:type_name -> google.protobuf.Timestamp
	21, // 9: cashpilot.v1.DaySnapshot.debt_balances:type_name -> cashpilot.v1.DaySnapshot.DebtBalancesEntry
	9,  // 10: cashpilot.v1.RunCashDebtSimulationResponse.snapshots:type_name -> cashpilot.v1.DaySnapshot
	22, // 11: cashpilot.v1.RunCashDebtSimulationResponse.final_debt_balances:type_name -> cashpilot.v1.RunCashDebtSimulationResponse.FinalDebtBalancesEntry
	23, // 12: cashpilot.v1.RunCashDebtSimulationResponse.debt_free_date:type_name -> google.protobuf.Timestamp
	23, // 13: cashpilot.v1.ProjectInvestmentGrowthRequest.start_date:type_name -> google.protobuf.Timestamp
	23, // 14: cashpilot.v1.ProjectInvestmentGrowthRequest.end_date:type_name -> google.protobuf.Timestamp
	23, // 15: cashpilot.v1.ProjectionPoint.date:type_name -> google.protobuf.Timestamp
	12, // 16: cashpilot.v1.ProjectInvestmentGrowthResponse.points:type_name -> cashpilot.v1.ProjectionPoint
	23, // 17: cashpilot.v1.EstimateSpendableCashRequest.as_of:type_name -> google.protobuf.Timestamp
	23, // 18: cashpilot.v1.EstimateSpendableCashResponse.next_paycheck_date:type_name -> google.protobuf.Timestamp
	15, // 19: cashpilot.v1.EstimateSpendableCashResponse.breakdown:type_name -> cashpilot.v1.SpendableBreakdown
	16, // 20: cashpilot.v1.EstimateSpendableCashResponse.conservative:type_name -> cashpilot.v1.ConservativeScenario
	23, // 21: cashpilot.v1.ExpandRecurringScheduleRequest.anchor_date:type_name -> google.protobuf.Timestamp
	1,  // 22: cashpilot.v1.ExpandRecurringScheduleRequest.frequency:type_name -> cashpilot.v1.RecurringFrequency
	23, // 23: cashpilot.v1.ExpandRecurringScheduleRequest.range_start:type_name -> google.protobuf.Timestamp
	23, // 24: cashpilot.v1.ExpandRecurringScheduleRequest.range_end:type_name -> google.protobuf.Timestamp
	23, // 25: cashpilot.v1.ScheduleOccurrence.date:type_name -> google.protobuf.Timestamp
	19, // 26: cashpilot.v1.ExpandRecurringScheduleResponse.occurrences:type_name -> cashpilot.v1.ScheduleOccurrence
	2,  // 27: cashpilot.v1.CashPilotService.CalculateSpendingStatistics:input_type -> cashpilot.v1.CalculateSpendingStatisticsRequest
	5,  // 28: cashpilot.v1.CashPilotService.PlanDebtAllocation:input_type -> cashpilot.v1.PlanDebtAllocationRequest
	8,  // 29: cashpilot.v1.CashPilotService.RunCashDebtSimulation:input_type -> cashpilot.v1.RunCashDebtSimulationRequest
	11, // 30: cashpilot.v1.CashPilotService.ProjectInvestmentGrowth:input_type -> cashpilot.v1.ProjectInvestmentGrowthRequest
	14, // 31: cashpilot.v1.CashPilotService.EstimateSpendableCash:input_type -> cashpilot.v1.EstimateSpendableCashRequest
	18, // 32: cashpilot.v1.CashPilotService.ExpandRecurringSchedule:input_type -> cashpilot.v1.ExpandRecurringScheduleRequest
	4,  // 33: cashpilot.v1.CashPilotService.CalculateSpendingStatistics:output_type -> cashpilot.v1.CalculateSpendingStatisticsResponse
	7,  // 34: cashpilot.v1.CashPilotService.PlanDebtAllocation:output_type -> cashpilot.v1.PlanDebtAllocationResponse
	10, // 35: cashpilot.v1.CashPilotService.RunCashDebtSimulation:output_type -> cashpilot.v1.RunCashDebtSimulationResponse
	13, // 36: cashpilot.v1.CashPilotService.ProjectInvestmentGrowth:output_type -> cashpilot.v1.ProjectInvestmentGrowthResponse
	17, // 37: cashpilot.v1.CashPilotService.EstimateSpendableCash:output_type -> cashpilot.v1.EstimateSpendableCashResponse
	20, // 38: cashpilot.v1.CashPilotService.ExpandRecurringSchedule:output_type -> cashpilot.v1.ExpandRecurringScheduleResponse
	33, // [33:39] is the sub-list for method output_type
	27, // [27:33] is the sub-list for method input_type
	27, // [27:27] is the sub-list for extension type_name
	27, // [27:27] is the sub-list for extension extendee
	0,  // [0:27] is the sub-list for field type_name
}

func init() { file_cashpilot_v1_cashpilot_proto_init() }
func file_cashpilot_v1_cashpilot_proto_init() {
	if File_cashpilot_v1_cashpilot_proto != nil {
		return
	}
	if !protoimpl.UnsafeEnabled {
		file_cashpilot_v1_cashpilot_proto_msgTypes[0].Exporter = func(v any, i int) any {
			switch v := v.(*CalculateSpendingStatisticsRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_cashpilot_v1_cashpilot_proto_msgTypes[1].Exporter = func(v any, i int) any {
			switch v := v.(*WindowStatistics); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_cashpilot_v1_cashpilot_proto_msgTypes[2].Exporter = func(v any, i int) any {
			switch v := v.(*CalculateSpendingStatisticsResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_cashpilot_v1_cashpilot_proto_msgTypes[3].Exporter = func(v any, i int) any {
			switch v := v.(*PlanDebtAllocationRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_cashpilot_v1_cashpilot_proto_msgTypes[4].Exporter = func(v any, i int) any {
			switch v := v.(*DebtPayment); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_cashpilot_v1_cashpilot_proto_msgTypes[5].Exporter = func(v any, i int) any {
			switch v := v.(*PlanDebtAllocationResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_cashpilot_v1_cashpilot_proto_msgTypes[6].Exporter = func(v any, i int) any {
			switch v := v.(*RunCashDebtSimulationRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_cashpilot_v1_cashpilot_proto_msgTypes[7].Exporter = func(v any, i int) any {
			switch v := v.(*DaySnapshot); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_cashpilot_v1_cashpilot_proto_msgTypes[8].Exporter = func(v any, i int) any {
			switch v := v.(*RunCashDebtSimulationResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_cashpilot_v1_cashpilot_proto_msgTypes[9].Exporter = func(v any, i int) any {
			switch v := v.(*ProjectInvestmentGrowthRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_cashpilot_v1_cashpilot_proto_msgTypes[10].Exporter = func(v any, i int) any {
			switch v := v.(*ProjectionPoint); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_cashpilot_v1_cashpilot_proto_msgTypes[11].Exporter = func(v any, i int) any {
			switch v := v.(*ProjectInvestmentGrowthResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_cashpilot_v1_cashpilot_proto_msgTypes[12].Exporter = func(v any, i int) any {
			switch v := v.(*EstimateSpendableCashRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_cashpilot_v1_cashpilot_proto_msgTypes[13].Exporter = func(v any, i int) any {
			switch v := v.(*SpendableBreakdown); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_cashpilot_v1_cashpilot_proto_msgTypes[14].Exporter = func(v any, i int) any {
			switch v := v.(*ConservativeScenario); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_cashpilot_v1_cashpilot_proto_msgTypes[15].Exporter = func(v any, i int) any {
			switch v := v.(*EstimateSpendableCashResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_cashpilot_v1_cashpilot_proto_msgTypes[16].Exporter = func(v any, i int) any {
			switch v := v.(*ExpandRecurringScheduleRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_cashpilot_v1_cashpilot_proto_msgTypes[17].Exporter = func(v any, i int) any {
			switch v := v.(*ScheduleOccurrence); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_cashpilot_v1_cashpilot_proto_msgTypes[18].Exporter = func(v any, i int) any {
			switch v := v.(*ExpandRecurringScheduleResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_cashpilot_v1_cashpilot_proto_rawDesc,
			NumEnums:      2,
			NumMessages:   21,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_cashpilot_v1_cashpilot_proto_goTypes,
		DependencyIndexes: file_cashpilot_v1_cashpilot_proto_depIdxs,
		EnumInfos:         file_cashpilot_v1_cashpilot_proto_enumTypes,
		MessageInfos:      file_cashpilot_v1_cashpilot_proto_msgTypes,
	}.Build()
	File_cashpilot_v1_cashpilot_proto = out.File
	file_cashpilot_v1_cashpilot_proto_rawDesc = nil
	file_cashpilot_v1_cashpilot_proto_goTypes = nil
	file_cashpilot_v1_cashpilot_proto_depIdxs = nil
}
