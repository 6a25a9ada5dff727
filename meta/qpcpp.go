// Copyright © 2026 The qassert authors

package meta

// QPCPP describes the assertions raised by the QP/C++ real-time embedded
// framework (QF, QEP). The module tags are the names the framework passes to
// its assertion handler; the URLs point into the public framework reference.
//
// The descriptions reflect field experience with the framework and are not
// official vendor documentation.
var QPCPP = Table{
	{
		Module: "qf_actq", ID: 102,
		Description: Description{
			Brief: "QActive post(...), the event being posted is either null, invalid, or corrupt.",
			Tips: "This typically means the event pointer was improperly retained\n" +
				"after the event was returned to its event pool,\n" +
				"i.e. used after the event was garbage collected.",
			URL: "https://www.state-machine.com/qpc/struct_q_active.html#a1a81b9fd06d9c0aa5dea32d194f0552b",
		},
	},
	{
		Module: "qf_actq", ID: 190,
		Description: Description{
			Brief: "QActive post(...), the target active object's queue is full.",
			Tips: "If posting an event to an active object using QF_NO_MARGIN, and the target queue is full,\n" +
				"this assert will occur. The target AO might be overloaded OR a higher priority AO might\n" +
				"be preventing this AO from executing.\n" +
				"Note: 2024 online documentation refers to this as qf_actq:110",
			URL: "https://www.state-machine.com/qpc/struct_q_active.html#a1a81b9fd06d9c0aa5dea32d194f0552b",
		},
	},
	{
		Module: "qf_actq", ID: 202,
		Description: Description{
			Brief: "QActive postLIFO(...), the event being posted is either null, invalid, or corrupt.",
			Tips: "This typically means the event pointer was improperly retained\n" +
				"after the event was returned to its event pool,\n" +
				"i.e. used after the event was garbage collected.",
			URL: "https://www.state-machine.com/qpc/struct_q_active.html#a3a129f47e6d0c75c11a8902f8137f007",
		},
	},
	{
		Module: "qf_actq", ID: 201,
		Description: Description{
			Brief: "QActive postLIFO(...), the target active object's queue is full.",
			Tips: "If LIFO posting an event to an active object, and the target queue is full,\n" +
				"this assert will occur. The target AO might be overloaded OR a higher priority AO might\n" +
				"be preventing this AO from executing.",
			URL: "https://www.state-machine.com/qpc/struct_q_active.html#a3a129f47e6d0c75c11a8902f8137f007",
		},
	},
	{
		Module: "qf_actq", ID: 310,
		Description: Description{
			Brief: "QActive get(...), an internal integrity check has failed.",
			Tips:  "Possible data corruption.",
		},
	},
	{
		Module: "qf_actq", ID: 400,
		Description: Description{
			Brief: "QF getQueueMin, an error related to the selected priority input parameter.",
			Tips:  "Most likely, a currently unused priority was queried.",
			URL:   "https://www.state-machine.com/qpc/class_q_f.html#a29692c0dcab731199b5beb5847484ab7",
		},
	},
	{
		Module: "qep_hsm", ID: 200,
		Description: Description{
			Brief: "QHsm init failure.",
			Tips: "A setup of the target HSM was not completed correctly,\n" +
				"or the HSM's init was executed more than once.",
			URL: "https://www.state-machine.com/qpc/struct_q_hsm.html#ae69df28aa99b6f9db31a0499e5a52622",
		},
	},
	{
		Module: "qep_hsm", ID: 210,
		Description: Description{
			Brief: "QHsm init failure in the initial transition.",
			Tips: "The custom initial transition failed to transition to a state,\n" +
				"i.e. use Q_TRAN(...) in the HSM's initial state.",
			URL: "https://www.state-machine.com/qpc/struct_q_hsm.html#ae69df28aa99b6f9db31a0499e5a52622",
		},
	},
	{
		Module: "qep_hsm", ID: 220,
		Description: Description{
			Brief: "QHsm init failure in the initial transition, could not reach initial destination state.",
			Tips:  "The HSM state nesting may be too deep or is malformed in some manner.",
			URL:   "https://www.state-machine.com/qpc/struct_q_hsm.html#ae69df28aa99b6f9db31a0499e5a52622",
		},
	},
	{
		Module: "qep_hsm", ID: 290,
		Description: Description{
			Brief: "QHsm init failure in the initial transition, could not reach initial destination state.",
			Tips:  "The HSM state nesting may be too deep or is malformed in some manner.",
			URL:   "https://www.state-machine.com/qpc/struct_q_hsm.html#ae69df28aa99b6f9db31a0499e5a52622",
		},
	},
	{
		Module: "qf_defer", ID: 210,
		Description: Description{
			Brief: "The recalled deferred event must meet reference counter expectations.",
			Tips:  "Stomping on memory?",
			URL:   "https://www.state-machine.com/qpc/struct_q_active.html#a7a942dbe8981c0a6f85550a7dbb841be",
		},
	},
	{
		Module: "qf_dyn", ID: 200,
		Description: Description{
			Brief: "Call to poolInit(...) exceeds the configured maximum.",
			Tips:  "See QF_MAX_EPOOL. But do you really need more pools?",
			URL:   "https://www.state-machine.com/qpc/class_q_f.html#a1c4fc5636c2bc2e9d47e958aac05b8e1",
		},
	},
	{
		Module: "qf_dyn", ID: 201,
		Description: Description{
			Brief: "Each pool initialized by poolInit(...) must be initialized in increasing event size.",
			Tips: "Check the size of parameters used to initialize the pools and ensure they are\n" +
				"sized as expected and in increasing size.",
			URL: "https://www.state-machine.com/qpc/class_q_f.html#a1c4fc5636c2bc2e9d47e958aac05b8e1",
		},
	},
	{
		Module: "qf_dyn", ID: 400,
		Description: Description{
			Brief: "Call to getPoolMin(...) with invalid pool number.",
			Tips:  "Typo? Bad code? Forgot to initialize the pool?",
			URL:   "https://www.state-machine.com/qpc/class_q_f.html#a92f6caf14f52d95b7d8bfc39d1656fe3",
		},
	},
	{
		Module: "qf_dyn", ID: 300,
		Description: Description{
			Brief: "Attempting to allocate an event that is larger than any available pool.",
			Tips:  "Probably need to increase the event size of the largest event pool.",
			URL:   "https://www.state-machine.com/qpc/class_q_f.html#ad3bc25ebbfc2c2c433f8762a77136366",
		},
	},
	{
		Module: "qf_dyn", ID: 320,
		Description: Description{
			Brief: "Event allocation failed with QF_NO_MARGIN.",
			Tips:  "There is likely an event leak or excessive deferral of events.",
			URL:   "https://www.state-machine.com/qpc/class_q_f.html#ad3bc25ebbfc2c2c433f8762a77136366",
		},
	},
	{
		Module: "qf_dyn", ID: 402,
		Description: Description{
			Brief: "Event verification within garbage collection failed.",
			Tips:  "Check for memory corruption or stale event pointer being reused incorrectly.",
			URL:   "https://www.state-machine.com/qpc/class_q_f.html#a7aa4e9d39b8af089405cb829e2cc5a24",
		},
	},
	{
		Module: "qf_dyn", ID: 410,
		Description: Description{
			Brief: "Event's pool number was invalid.",
			Tips:  "Check for memory corruption of event related data.",
			URL:   "https://www.state-machine.com/qpc/class_q_f.html#a7aa4e9d39b8af089405cb829e2cc5a24",
		},
	},
	{
		Module: "qf_dyn", ID: 502,
		Description: Description{
			Brief: "While creating a new reference, an event failed verification.",
			Tips:  "Check for memory corruption or stale event pointer being reused incorrectly.",
			URL:   "https://www.state-machine.com/qpc/class_q_f.html#aee4449d368362c7fc1d1ddc258027d53",
		},
	},
	{
		Module: "qf_dyn", ID: 602,
		Description: Description{
			Brief: "While deleting an event reference, an event failed verification.",
			Tips:  "Check for memory corruption or stale event pointer being reused incorrectly.",
			URL:   "https://www.state-machine.com/qpc/class_q_f.html#aebb373ddc448c4198e4247b6c6ff3e69",
		},
	},
	{
		Module: "qf_mem", ID: 100,
		Description: Description{
			Brief: "QPPool init(...) parameters failed validation.",
			Tips: "Check the pool size and ensure that at least one free block will fit,\n" +
				"otherwise, see the documentation at the URL.",
			URL: "https://www.state-machine.com/qpc/struct_q_m_pool.html#a477cb6d8f27af8db6cf6a155b331d996",
		},
	},
	{
		Module: "qf_mem", ID: 110,
		Description: Description{
			Brief: "QPPool init(...) parameters failed validation.",
			Tips:  "The desired pool size must allow for at least one rounded up block.",
			URL:   "https://www.state-machine.com/qpc/struct_q_m_pool.html#a477cb6d8f27af8db6cf6a155b331d996",
		},
	},
	{
		Module: "qf_mem", ID: 300,
		Description: Description{
			Brief: "QMPool get(...) internal integrity check failure.",
			Tips:  "Check for memory corruption related to objects allocated from or near this pool.",
			URL:   "https://www.state-machine.com/qpc/struct_q_m_pool.html#a312e8c7ec9a9a751578248f3ef3847ff",
		},
	},
	{
		Module: "qf_mem", ID: 302,
		Description: Description{
			Brief: "QMPool get(...) internal integrity check failure.",
			Tips:  "Check for memory corruption related to objects allocated from or near this pool.",
			URL:   "https://www.state-machine.com/qpc/struct_q_m_pool.html#a312e8c7ec9a9a751578248f3ef3847ff",
		},
	},
	{
		Module: "qf_mem", ID: 320,
		Description: Description{
			Brief: "QMPool get(...) internal integrity check failure upon becoming empty.",
			Tips:  "Check for memory corruption related to objects allocated from or near this pool.",
			URL:   "https://www.state-machine.com/qpc/struct_q_m_pool.html#a312e8c7ec9a9a751578248f3ef3847ff",
		},
	},
	{
		Module: "qf_mem", ID: 330,
		Description: Description{
			Brief: "QMPool get(...) internal integrity check failure when not empty.",
			Tips:  "Check for memory corruption related to objects allocated from or near this pool.",
			URL:   "https://www.state-machine.com/qpc/struct_q_m_pool.html#a312e8c7ec9a9a751578248f3ef3847ff",
		},
	},
	{
		Module: "qf_mem", ID: 200,
		Description: Description{
			Brief: "QMPool put(...) failed internal integrity check.",
			Tips:  "Check for memory corruption related to objects allocated from or near this pool.",
			URL:   "https://www.state-machine.com/qpc/struct_q_m_pool.html#a2fc0921a76c70b107e9f495a37c02681",
		},
	},
	{
		Module: "qf_ps", ID: 200,
		Description: Description{
			Brief: "Attempt to publish an event with a signal outside the configured pub/sub signal range.",
			Tips: "Is this an event that would normally be posted directly or needs to be added to the\n" +
				"master publish/subscribe signal enum?",
			URL: "https://www.state-machine.com/qpc/struct_q_active.html#a892d39d181cc0f0b053669d6b7c5b4bb",
		},
	},
	{
		Module: "qf_ps", ID: 202,
		Description: Description{
			Brief: "publish(...) failed an internal integrity check.",
			Tips:  "Likely memory corruption.",
			URL:   "https://www.state-machine.com/qpc/struct_q_active.html#a892d39d181cc0f0b053669d6b7c5b4bb",
		},
	},
	{
		Module: "qf_ps", ID: 210,
		Description: Description{
			Brief: "publish(...) failed an internal integrity check, where the AO\n" +
				"found was (somehow) not registered with the framework.",
			Tips: "Likely memory corruption.",
			URL:  "https://www.state-machine.com/qpc/struct_q_active.html#a892d39d181cc0f0b053669d6b7c5b4bb",
		},
	},
	{
		Module: "qf_ps", ID: 220,
		Description: Description{
			Brief: "publish(...) failed an internal integrity check, where a subsequent AO\n" +
				"found was (somehow) not registered with the framework.",
			Tips: "Likely memory corruption.",
			URL:  "https://www.state-machine.com/qpc/struct_q_active.html#a892d39d181cc0f0b053669d6b7c5b4bb",
		},
	},
	{
		Module: "qf_ps", ID: 290,
		Description: Description{
			Brief: "publish(...) failed an internal integrity check.",
			Tips:  "Likely memory corruption.",
			URL:   "https://www.state-machine.com/qpc/struct_q_active.html#a892d39d181cc0f0b053669d6b7c5b4bb",
		},
	},
	{
		Module: "qf_ps", ID: 300,
		Description: Description{
			Brief: "subscribe(...) failed one or more of multiple input and state checks.",
			Tips: "Specifically:\n" +
				"  - The signal being subscribed to must be within the configured pub/sub signal range.\n" +
				"  - The subscriber AO priority must be within the configured range.\n" +
				"  - The AO must be registered with the framework.",
			URL: "https://www.state-machine.com/qpc/struct_q_active.html#ae2510a52f1185e2561fa78323983c04d",
		},
	},
	{
		Module: "qf_ps", ID: 302,
		Description: Description{
			Brief: "subscribe(...) failed an internal integrity check.",
			Tips:  "Likely memory corruption.",
			URL:   "https://www.state-machine.com/qpc/struct_q_active.html#ae2510a52f1185e2561fa78323983c04d",
		},
	},
	{
		Module: "qf_ps", ID: 400,
		Description: Description{
			Brief: "unsubscribe(...) failed one or more of multiple input and state checks.",
			Tips: "Specifically:\n" +
				"  - The signal being unsubscribed must be within the configured pub/sub signal range.\n" +
				"  - The AO priority must be within the configured range.\n" +
				"  - The AO must be registered with the framework.",
			URL: "https://www.state-machine.com/qpc/struct_q_active.html#a0cf08b1345a60cb4cd2d580f448f819d",
		},
	},
	{
		Module: "qf_ps", ID: 402,
		Description: Description{
			Brief: "unsubscribe(...) failed an internal integrity check.",
			Tips:  "Likely memory corruption.",
			URL:   "https://www.state-machine.com/qpc/struct_q_active.html#a0cf08b1345a60cb4cd2d580f448f819d",
		},
	},
	{
		Module: "qf_ps", ID: 500,
		Description: Description{
			Brief: "unsubscribeAll(...) failed one or more of multiple input and state checks.",
			Tips: "Specifically:\n" +
				"  - The AO priority must be within the configured range.\n" +
				"  - The AO must be registered with the framework.",
			URL: "https://www.state-machine.com/qpc/struct_q_active.html#aec64ea18ec1909aa5ce20ca1c154bea4",
		},
	},
	{
		Module: "qf_qact", ID: 100,
		Description: Description{
			Brief: "QActive register(...) failed one or more of input argument checks.",
			Tips: "Specifically:\n" +
				"  - The AO priority must be within the configured range.\n" +
				"  - The AO priority must not be in use already.\n" +
				"  - The AO priority must not exceed the preemption threshold.",
			URL: "https://www.state-machine.com/qpc/struct_q_active.html#abe6de335bea204db67cbd96fbb988f2b",
		},
	},
	{
		Module: "qf_qact", ID: 190,
		Description: Description{
			Brief: "QActive register(...) failed one or more post-condition checks.",
			Tips: "Specifically:\n" +
				"  - The preceding preemption threshold must not exceed this AO's preemption threshold.\n" +
				"  - The preemption threshold must not exceed the next preemption threshold.",
			URL: "https://www.state-machine.com/qpc/struct_q_active.html#abe6de335bea204db67cbd96fbb988f2b",
		},
	},
	{
		Module: "qf_qact", ID: 200,
		Description: Description{
			Brief: "QActive unregister(...) failed one or more input argument checks.",
			Tips: "Specifically:\n" +
				"  - The AO priority must be within the configured range.\n" +
				"  - The priority must have been already registered.",
			URL: "https://www.state-machine.com/qpc/struct_q_active.html#a16aba45c83211a8edc065662345e8a8e",
		},
	},
	{
		Module: "qf_qeq", ID: 200,
		Description: Description{
			Brief: "QEQueue post(...), the provided event pointer is null.",
			Tips:  "Thou shalt not follow the null pointer!",
			URL:   "https://www.state-machine.com/qpc/struct_q_e_queue.html#aef79dbd59331c61ec1591f7ca43b1280",
		},
	},
	{
		Module: "qf_qeq", ID: 210,
		Description: Description{
			Brief: "QEQueue post(...), the queue is full and margin is QF_NO_MARGIN.",
			Tips: "Double check priorities and thread behavior. A thread is generating too many events or\n" +
				"the thread servicing this queue is too slow, is being starved by a higher priority thread\n" +
				"or needs a deeper queue.",
			URL: "https://www.state-machine.com/qpc/struct_q_e_queue.html#aef79dbd59331c61ec1591f7ca43b1280",
		},
	},
	{
		Module: "qf_qeq", ID: 300,
		Description: Description{
			Brief: "QEQueue postLIFO(...), the target queue is full.",
			Tips: "Double check priorities and thread behavior. A thread is generating too many events or\n" +
				"the thread servicing this queue is too slow, is being starved by a higher priority thread\n" +
				"or needs a deeper queue.",
			URL: "https://www.state-machine.com/qpc/struct_q_e_queue.html#ab0c7a67307992567ffea4caf891a832a",
		},
	},
	{
		Module: "qf_qeq", ID: 410,
		Description: Description{
			Brief: "QEQueue get(...), an internal integrity check failed.",
			Tips:  "Possible memory corruption?",
			URL:   "https://www.state-machine.com/qpc/struct_q_e_queue.html#a55ae04e6f994d5016577ed4b342a8fbd",
		},
	},
	{
		Module: "qf_time", ID: 300,
		Description: Description{
			Brief: "QTimeEvt ctor(...), invalid input parameter.",
			Tips:  "'sig' must not be zero and 'tickRate' must be within the configured range.",
			URL:   "https://www.state-machine.com/qpc/struct_q_time_evt.html#a04b021eb5cf81f1d1700b9ce0afa37a9",
		},
	},
	{
		Module: "qf_time", ID: 400,
		Description: Description{
			Brief: "QTimeEvt arm(...), invalid input parameter.",
			Tips: "  The host AO must not be null.\n" +
				"  The time event must not be armed already.\n" +
				"  Ticks must not be zero.\n" +
				"  The signal value must be valid.",
			URL: "https://www.state-machine.com/qpc/struct_q_time_evt.html#a9bbcb00315fb8bb8641003b2b2d07ce4",
		},
	},
	{
		Module: "qf_time", ID: 600,
		Description: Description{
			Brief: "QTimeEvt rearm(...), invalid input parameter.",
			Tips: "  The host AO must not be null.\n" +
				"  The time event must not be armed already.\n" +
				"  Ticks must not be zero.\n" +
				"  The signal value must be valid.",
			URL: "https://www.state-machine.com/qpc/struct_q_time_evt.html#a3a5734e32caac22b89766a4b90a1679b",
		},
	},
	{
		Module: "qf_time", ID: 100,
		Description: Description{
			Brief: "QTimeEvt tick(...), internal integrity failure.",
			Tips:  "Invalid 'tickRate' parameter. The function calling tick(...) should be examined.",
			URL:   "https://www.state-machine.com/qpc/struct_q_time_evt.html#a4110381e712227678890d112edc28cf9",
		},
	},
	{
		Module: "qf_time", ID: 110,
		Description: Description{
			Brief: "QTimeEvt tick(...), internal integrity failure.",
			Tips:  "An internal variable was unexpectedly null. Memory corruption?",
			URL:   "https://www.state-machine.com/qpc/struct_q_time_evt.html#a4110381e712227678890d112edc28cf9",
		},
	},
	{
		Module: "qf_time", ID: 112,
		Description: Description{
			Brief: "QTimeEvt tick(...), internal integrity failure.",
			Tips: "A timer is firing, but the event to be posted is invalid.\n" +
				"Confirm that the event provided to the timer is valid, otherwise seek\n" +
				"out sources of memory corruption.",
			URL: "https://www.state-machine.com/qpc/struct_q_time_evt.html#a4110381e712227678890d112edc28cf9",
		},
	},
	{
		Module: "qf_time", ID: 190,
		Description: Description{
			Brief: "QTimeEvt tick(...), internal timer loop limit hit.",
			Tips: "There might be too many timers active in the system. Otherwise, seek\n" +
				"out sources of memory corruption.",
			URL: "https://www.state-machine.com/qpc/struct_q_time_evt.html#a4110381e712227678890d112edc28cf9",
		},
	},
	{
		Module: "qf_time", ID: 800,
		Description: Description{
			Brief: "QTimeEvt noActive(...), input parameter failed sanity check.",
			Tips:  "The tickRate param must be within the configured range.",
			URL:   "https://www.state-machine.com/qpc/struct_q_time_evt.html#a1c6b4144dd26a56d3c65a18bc3a9e640",
		},
	},
}
