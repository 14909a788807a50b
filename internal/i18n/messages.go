package i18n

// messages maps a catalog key to its English and Chinese text. Strings
// rendered through F, paragraphs included, write a literal percent as %%.
var messages = map[string][2]string{
	// shared
	"unavailable": {"⚠️ **Data unavailable**: `%s` is missing or unreadable", "⚠️ **数据不可用**: `%s` 缺失或无法读取"},
	"no_data":     {"No data", "无数据"},
	"none":        {"None", "无"},
	"to_fill":     {"_to be filled_", "_待填写_"},
	"unit.days":   {"%d days", "%d 天"},

	// report assembly
	"report.generation_error": {"**Generation Error**: Error generating %s section: %v", "**生成错误**: 生成 %s 章节时发生错误: %v"},
	"report.not_implemented":  {"**To Be Implemented**: %s section not yet implemented", "**待实现**: %s 章节暂未实现"},

	// table columns
	"col.item":            {"Item", "项目"},
	"col.content":         {"Content", "内容"},
	"col.value":           {"Value", "值"},
	"col.metric":          {"Metric", "指标"},
	"col.description":     {"Description", "说明"},
	"col.count":           {"Count", "数量"},
	"col.percent":         {"Percentage", "占比"},
	"col.status":          {"Status", "状态"},
	"col.state":           {"State", "状态"},
	"col.type":            {"Type", "类型"},
	"col.size":            {"Size", "大小"},
	"col.role_type":       {"Role Type", "角色类型"},
	"col.node_list":       {"Nodes", "节点列表"},
	"col.config_item":     {"Setting", "配置项"},
	"col.node_name":       {"Node Name", "节点名称"},
	"col.node":            {"Node", "节点"},
	"col.ip":              {"IP Address", "IP地址"},
	"col.roles":           {"Roles", "角色"},
	"col.version":         {"Version", "版本"},
	"col.uptime":          {"Uptime", "运行时间"},
	"col.cpu":             {"CPU Usage", "CPU使用率"},
	"col.heap":            {"Heap Usage", "堆内存使用率"},
	"col.disk":            {"Disk Usage", "磁盘使用率"},
	"col.cpu_cores":       {"CPU Cores", "CPU核数"},
	"col.available_cores": {"Available Cores", "可用核数"},
	"col.load":            {"Load (1m/5m/15m)", "负载 (1m/5m/15m)"},
	"col.system_mem":      {"System Memory", "系统内存"},
	"col.heap_max":        {"Max Heap", "最大堆内存"},
	"col.heap_used":       {"Heap Used", "已用堆内存"},
	"col.java_version":    {"Java Version", "Java版本"},
	"col.jvm_version":     {"JVM Version", "JVM版本"},
	"col.gc":              {"GC Collectors", "垃圾回收器"},
	"col.heap_config":     {"Heap (init/max)", "堆配置 (初始/最大)"},
	"col.young_gc":        {"Young GC (count/ms)", "Young GC (次数/毫秒)"},
	"col.old_gc":          {"Old GC (count/ms)", "Old GC (次数/毫秒)"},
	"col.gc_overhead":     {"GC Overhead", "GC开销"},
	"col.primary_role":    {"Primary Role", "主要角色"},
	"col.attributes":      {"Attributes", "节点属性"},
	"col.index_ops":       {"Index Ops", "索引操作"},
	"col.delete_ops":      {"Delete Ops", "删除操作"},
	"col.query_ops":       {"Query Ops", "查询操作"},
	"col.avg_query":       {"Avg Query Time", "平均查询耗时"},
	"col.total_space":     {"Total Space", "总空间"},
	"col.used_space":      {"Used Space", "已用空间"},
	"col.free_space":      {"Free Space", "可用空间"},
	"col.usage":           {"Usage", "使用率"},
	"col.shard_count":     {"Shards", "分片数"},
	"col.index_name":      {"Index Name", "索引名称"},
	"col.primaries":       {"Primaries", "主分片"},
	"col.replicas":        {"Replicas", "副本"},
	"col.docs":            {"Documents", "文档数"},
	"col.health":          {"Health", "健康状态"},
	"col.index_count":     {"Indices", "索引数"},
	"col.shard_id":        {"Shard", "分片"},
	"col.index_type":      {"Index Type", "索引类型"},
	"col.examples":        {"Examples", "示例"},
	"col.replica_shards":  {"Replica Shards", "副本分片"},
	"col.total_shards":    {"Total Shards", "分片总数"},
	"col.shard_size":      {"Shard Size", "分片大小"},
	"col.size_range":      {"Size Range", "大小范围"},
	"col.file_stat":       {"Statistic", "统计项"},
	"col.file_name":       {"File Name", "文件名"},
	"col.modified":        {"Modified", "修改时间"},
	"col.error_type":      {"Error Type", "错误类型"},
	"col.occurrences":     {"Occurrences", "出现次数"},
	"col.latest":          {"Latest", "最近出现"},
	"col.warning_type":    {"Warning Type", "警告类型"},
	"col.severity":        {"Severity", "严重程度"},

	// report overview
	"overview.customer":     {"Customer", "客户名称"},
	"overview.cluster":      {"Cluster Name", "集群名称"},
	"overview.date":         {"Collection Date", "采集日期"},
	"overview.version":      {"Elasticsearch Version", "Elasticsearch版本"},
	"overview.license":      {"License Type", "许可证类型"},
	"overview.owner":        {"License Owner", "许可证所有者"},
	"overview.expiry":       {"License Expiry", "许可证到期时间"},
	"overview.max_nodes":    {"Licensed Max Nodes", "许可最大节点数"},
	"overview.diag_version": {"Diagnostics Version", "诊断工具版本"},
	"overview.executor":     {"Inspector", "巡检执行人"},
	"overview.contact":      {"Contact", "联系方式"},

	// executive summary
	"summary.overall":         {"2.1 Overall Assessment", "2.1 总体评估"},
	"summary.status":          {"Cluster Status", "集群状态"},
	"summary.metrics":         {"2.2 Key Metrics Overview", "2.2 关键指标概览"},
	"summary.health":          {"2.3 Health Status Details", "2.3 健康状态详情"},
	"summary.unassigned_note": {"⚠️ %d shards are unassigned. Check node availability and allocation settings.", "⚠️ 有 %d 个分片未分配，请检查节点可用性和分配设置。"},
	"summary.relocating_note": {"ℹ️ %d shards are relocating. This is usually a transient rebalancing state.", "ℹ️ 有 %d 个分片正在迁移，通常是临时的再平衡状态。"},
	"status.green":            {"Cluster is healthy, all primary and replica shards are allocated", "集群健康，所有主分片和副本分片均已分配"},
	"status.yellow":           {"All primary shards are allocated, some replica shards are not", "所有主分片已分配，部分副本分片未分配"},
	"status.red":              {"Some primary shards are unassigned, data may be unavailable", "部分主分片未分配，数据可能不可用"},
	"status.unknown":          {"Cluster status is unknown", "集群状态未知"},
	"metric.nodes":            {"Nodes", "节点数"},
	"metric.data_nodes":       {"Data Nodes", "数据节点数"},
	"metric.indices":          {"Indices", "索引数"},
	"metric.primaries":        {"Primary Shards", "主分片数"},
	"metric.shards":           {"Total Shards", "分片总数"},
	"metric.replicas":         {"Replica Shards", "副本分片数"},
	"metric.size":             {"Storage Size", "存储大小"},
	"metric.docs":             {"Documents", "文档总数"},
	"metric.deleted_docs":     {"Deleted Documents", "已删除文档数"},
	"shards.active":           {"Active Shards", "活跃分片"},
	"shards.active_primaries": {"Active Primary Shards", "活跃主分片"},
	"shards.active_percent":   {"Active Shards Percentage", "活跃分片比例"},
	"shards.relocating":       {"Relocating Shards", "迁移中分片"},
	"shards.initializing":     {"Initializing Shards", "初始化中分片"},
	"shards.unassigned":       {"Unassigned Shards", "未分配分片"},
	"shards.replication":      {"Replication Factor", "副本系数"},

	// cluster basic info
	"cluster.identity":       {"3.1 Cluster Identity Information", "3.1 集群标识信息"},
	"cluster.uuid":           {"Cluster UUID", "集群UUID"},
	"cluster.name":           {"Cluster Name", "集群名称"},
	"cluster.status":         {"Cluster Status", "集群状态"},
	"cluster.description":    {"Description", "集群描述"},
	"cluster.production":     {"Production Elasticsearch cluster", "生产环境 Elasticsearch 集群"},
	"cluster.master":         {"3.2 Master Node Information", "3.2 主节点信息"},
	"cluster.master_missing": {"⚠️ Master node information is not available.", "⚠️ 无法获取主节点信息。"},
	"cluster.topology":       {"3.3 Cluster Topology", "3.3 集群拓扑结构"},
	"cluster.settings":       {"3.4 Cluster Settings Overview", "3.4 集群设置概览"},
	"cluster.status_stats":   {"3.5 Cluster Status Statistics", "3.5 集群状态统计"},
	"cluster.storage":        {"3.6 Storage Architecture", "3.6 存储架构"},
	"cluster.shard_strategy": {"3.7 Shard Distribution Strategy", "3.7 分片分布策略"},
	"master.current":         {"Current Master", "当前主节点"},
	"master.id":              {"Node ID", "节点ID"},
	"master.address":         {"Address", "地址"},
	"master.roles":           {"Roles", "节点角色"},
	"master.version":         {"Version", "版本"},
	"master.state":           {"State", "状态"},
	"master.active":          {"✅ Active", "✅ 活跃"},
	"topology.overview":      {"3.3.1 Node Overview", "3.3.1 节点总览"},
	"topology.total":         {"Total Nodes", "节点总数"},
	"topology.responding":    {"Responding Nodes", "响应节点数"},
	"topology.roles":         {"3.3.2 Node Role Distribution", "3.3.2 节点角色分布"},
	"topology.more_nodes":    {" and %d more", " 等 %d 个"},
	"topology.network":       {"3.3.3 Network Distribution", "3.3.3 网络分布"},
	"topology.segments":      {"Network segments", "网段"},
	"topology.segment_nodes": {"%d nodes", "%d 个节点"},
	"settings.key_params":    {"3.4.1 Key Configuration Parameters", "3.4.1 关键配置参数"},
	"settings.discovery":     {"Discovery Seed Hosts", "集群发现节点"},
	"settings.dynamic":       {"3.4.2 Dynamic Settings", "3.4.2 动态配置"},
	"settings.persistent":    {"Persistent Settings", "持久化配置"},
	"settings.transient":     {"Transient Settings", "临时配置"},
	"settings.none":          {"No dynamic settings configured", "未配置动态设置"},
	"status.collected":       {"Collection Time", "采集时间"},
	"status.pending":         {"Pending Tasks", "待处理任务"},
	"status.max_wait":        {"Max Task Wait Time", "任务最长等待时间"},
	"storage.total":          {"Total Storage", "总存储"},
	"storage.bytes":          {"Total Bytes", "总字节数"},
	"storage.avg_node":       {"Average per Node", "节点平均存储"},
	"rebalance.heading":      {"Shard Rebalance Strategy", "分片再平衡策略"},
	"rebalance.no_settings":  {"⚠️ Cluster settings are not available, the rebalance strategy cannot be determined.", "⚠️ 无法获取集群设置，无法确定再平衡策略。"},
	"rebalance.strategy":     {"Rebalance strategy", "再平衡策略"},
	"rebalance.none": {"🔴 **Shard rebalancing is disabled.**\n\n" +
		"- New nodes will not receive existing shards\n" +
		"- Shard counts per node may drift apart over time\n" +
		"- Confirm this is intentional, for example during maintenance",
		"🔴 **分片再平衡已禁用。**\n\n" +
			"- 新加入的节点不会接收已有分片\n" +
			"- 各节点的分片数量可能逐渐失衡\n" +
			"- 请确认是否为有意设置，例如维护期间"},
	"rebalance.primaries": {"🟡 **Only primary shards are rebalanced.**\n\n- Replica shards stay where they are\n- Check whether replica distribution is balanced",
		"🟡 **仅对主分片进行再平衡。**\n\n- 副本分片不会移动\n- 请检查副本分片分布是否均衡"},
	"rebalance.replicas": {"🟡 **Only replica shards are rebalanced.**\n\n- Primary shards stay where they are\n- Check whether primary distribution is balanced",
		"🟡 **仅对副本分片进行再平衡。**\n\n- 主分片不会移动\n- 请检查主分片分布是否均衡"},
	"rebalance.all": {"✅ **All shards are rebalanced automatically.**",
		"✅ **所有分片均可自动再平衡。**"},

	// node info
	"nodes.overview":       {"4.1 Node Overview", "4.1 节点概览总表"},
	"nodes.hardware":       {"4.2 Hardware Resources", "4.2 硬件资源信息"},
	"nodes.cpu":            {"4.2.1 CPU Resources", "4.2.1 CPU资源概览"},
	"nodes.memory":         {"4.2.2 Memory Resources", "4.2.2 内存资源概览"},
	"nodes.jvm":            {"4.3 JVM Runtime", "4.3 JVM运行环境"},
	"nodes.jvm_config":     {"4.3.1 JVM Version and Configuration", "4.3.1 JVM版本与配置"},
	"nodes.gc":             {"4.3.2 GC Statistics", "4.3.2 GC性能统计"},
	"nodes.roles":          {"4.4 Node Roles and Configuration", "4.4 节点角色与配置"},
	"nodes.roles_detail":   {"4.4.1 Role Assignment", "4.4.1 节点角色分配详情"},
	"nodes.performance":    {"4.5 Node Performance", "4.5 节点性能指标"},
	"nodes.indexing":       {"4.5.1 Index Operations", "4.5.1 索引操作统计"},
	"nodes.storage":        {"4.6 Storage and Shard Distribution", "4.6 存储与分片分布"},
	"nodes.storage_usage":  {"4.6.1 Node Storage Usage", "4.6.1 节点存储使用情况"},
	"nodes.alerts":         {"4.7 Anomalies and Alerts", "4.7 异常与告警"},
	"nodes.alert_check":    {"4.7.1 Resource Alert Check", "4.7.1 资源告警检查"},
	"nodes.no_alerts":      {"✅ All nodes' resource usage is within normal range.", "✅ 所有节点资源使用均在正常范围内。"},
	"nodes.current_alerts": {"Current alerts", "当前告警"},
	"nodes.advice":         {"4.7.2 Recommendations", "4.7.2 优化建议"},
	"nodes.advice_body": {"- Keep JVM heap usage below 75%% under normal load\n" +
		"- Keep disk usage below the 85%% low watermark\n" +
		"- Run the same Elasticsearch version on every node",
		"- 正常负载下 JVM 堆内存使用率应低于 75%%\n" +
			"- 磁盘使用率应低于 85%% 的低水位线\n" +
			"- 所有节点应运行相同的 Elasticsearch 版本"},
	"jvm.heap_config":      {"%s / %s", "%s / %s"},
	"gc.count_time":        {"%d / %d", "%d / %d"},
	"alert.cpu.critical":   {"CPU usage critical: %.1f%%", "CPU使用率严重过高: %.1f%%"},
	"alert.cpu.warning":    {"CPU usage high: %.1f%%", "CPU使用率偏高: %.1f%%"},
	"alert.heap.critical":  {"JVM heap usage critical: %.1f%%", "JVM堆内存使用率严重过高: %.1f%%"},
	"alert.heap.warning":   {"JVM heap usage high: %.1f%%", "JVM堆内存使用率偏高: %.1f%%"},
	"alert.disk.critical":  {"Disk usage critical: %.1f%%", "磁盘使用率严重过高: %.1f%%"},
	"alert.disk.warning":   {"Disk usage high: %.1f%%", "磁盘使用率偏高: %.1f%%"},
	"alert.cpu_action":     {"Investigate expensive queries and indexing load", "排查高开销查询和写入负载"},
	"alert.heap_action":    {"Review heap sizing, field data and large aggregations", "检查堆内存配置、fielddata和大型聚合"},
	"alert.disk_action":    {"Free disk space or add data nodes", "清理磁盘空间或增加数据节点"},
	"alert.mixed_versions": {"Mixed Elasticsearch versions: %s", "存在多个 Elasticsearch 版本: %s"},

	// index analysis
	"index.overview":            {"5.1 Index Overview Statistics", "5.1 索引概览统计"},
	"index.basic":               {"5.1.1 Basic Statistics", "5.1.1 基础统计信息"},
	"index.averages":            {"5.1.2 Average Distribution", "5.1.2 平均分布统计"},
	"index.shard_health":        {"5.1.3 Shard Health", "5.1.3 分片健康状态"},
	"index.details":             {"5.2 Index Details", "5.2 索引详细信息表"},
	"index.typical":             {"5.2.1 Typical Indices (20 representative indices)", "5.2.1 典型索引信息（20个代表性索引）"},
	"index.health":              {"5.3 Index Health Analysis", "5.3 索引健康状态分析"},
	"index.health_distribution": {"5.3.1 Index Status Distribution", "5.3.1 索引状态分布"},
	"index.shard_state":         {"5.3.2 Shard State", "5.3.2 分片状态"},
	"index.all_started":         {"✅ All shards are in STARTED state.", "✅ 所有分片均处于 STARTED 状态。"},
	"index.problem_shards":      {"5.3.2 Problem Shards", "5.3.2 问题分片详情"},
	"index.problem_total":       {"Total: %d problem shards", "合计: %d 个问题分片"},
	"index.patterns":            {"5.4 Index Patterns and Distribution", "5.4 索引模式与分布"},
	"index.naming":              {"5.4.1 Naming Pattern Analysis", "5.4.1 索引命名模式分析"},
	"index.shard_distribution":  {"5.5 Shard Distribution Analysis", "5.5 分片分布分析"},
	"index.per_node":            {"5.5.1 Shards per Node", "5.5.1 各节点分片分布"},
	"index.size_distribution":   {"5.5.2 Shard Size Distribution", "5.5.2 分片大小分布"},
	"index.performance":         {"5.6 Index Performance", "5.6 索引性能指标"},
	"index.operations":          {"5.6.1 Index Operations", "5.6.1 索引操作统计"},
	"index.query_cache":         {"5.6.2 Query Cache Performance", "5.6.2 查询缓存性能"},
	"index.optimization":        {"5.7 Index Optimization Recommendations", "5.7 索引优化建议"},
	"index.issues":              {"5.7.1 Configuration Issues Found", "5.7.1 发现的配置问题"},
	"index.config_state":        {"5.7.1 Index Configuration State", "5.7.1 索引配置状态"},
	"index.config_ok":           {"✅ No obvious index configuration issues found.", "✅ 未发现明显的索引配置问题。"},
	"index.recommendations":     {"5.7.2 Recommendations", "5.7.2 优化建议"},
	"index.best_practices":      {"5.7.3 Index Configuration Best Practices", "5.7.3 索引配置最佳实践"},
	"index.best_practices_body": {"- Keep shards between 10GB and 50GB\n" +
		"- Keep primary shards per index at or below twice the data node count (%d data nodes)\n" +
		"- Manage time-series indices with ILM rollover",
		"- 单个分片大小保持在 10GB 到 50GB 之间\n" +
			"- 每个索引的主分片数不超过数据节点数的两倍（当前 %d 个数据节点）\n" +
			"- 时间序列索引使用 ILM 滚动管理"},
	"index.avg_shards":             {"Shards per Index", "平均每索引分片数"},
	"index.avg_primaries":          {"Primaries per Index", "平均每索引主分片数"},
	"index.avg_docs":               {"Documents per Index", "平均每索引文档数"},
	"index.avg_size":               {"Size per Index", "平均每索引大小"},
	"index.desc.indices":           {"Number of indices in the cluster", "集群中的索引数量"},
	"index.desc.shards":            {"Primary and replica shards", "主分片与副本分片总数"},
	"index.desc.primaries":         {"Primary shards", "主分片数量"},
	"index.desc.replicas":          {"Replica shards", "副本分片数量"},
	"index.desc.replication":       {"Copies per primary shard", "每个主分片的副本系数"},
	"index.desc.docs":              {"Documents across all indices", "所有索引的文档总数"},
	"index.desc.deleted":           {"Documents marked deleted, awaiting merge", "已标记删除、等待合并的文档"},
	"index.desc.size":              {"Storage including replicas", "含副本的存储大小"},
	"index.desc.avg_shards":        {"Average shards per index", "每个索引的平均分片数"},
	"index.desc.avg_primaries":     {"Average primary shards per index", "每个索引的平均主分片数"},
	"index.desc.avg_docs":          {"Average documents per index", "每个索引的平均文档数"},
	"index.desc.avg_size":          {"Average storage per index", "每个索引的平均存储大小"},
	"index.desc.active":            {"Shards serving requests", "正在提供服务的分片"},
	"index.desc.active_primaries":  {"Primary shards serving requests", "正在提供服务的主分片"},
	"index.desc.relocating":        {"Shards moving between nodes", "正在节点间迁移的分片"},
	"index.desc.initializing":      {"Shards being created or recovered", "正在创建或恢复的分片"},
	"index.desc.unassigned":        {"Shards without a node", "未分配到节点的分片"},
	"index.desc.green":             {"All shards allocated", "所有分片均已分配"},
	"index.desc.yellow":            {"Replica shards unassigned", "存在未分配的副本分片"},
	"index.desc.red":               {"Primary shards unassigned", "存在未分配的主分片"},
	"index.issue.high_docs":        {"%d indices have more than 200 million documents", "%d 个索引的文档数超过 2 亿"},
	"index.issue.oversized":        {"%d indices have primary shards larger than 50GB", "%d 个索引的主分片超过 50GB"},
	"index.issue.undersized":       {"%d indices have shards smaller than 10GB", "%d 个索引的分片小于 10GB"},
	"index.issue.distribution":     {"%d indices have more primary shards than twice the data node count", "%d 个索引的主分片数超过数据节点数的两倍"},
	"index.rec.high_docs":          {"%s: %s documents, consider splitting by time or rollover", "%s: %s 个文档，建议按时间拆分或使用滚动"},
	"index.rec.oversized":          {"%s: largest primary shard %s, consider increasing primary shards", "%s: 最大主分片 %s，建议增加主分片数"},
	"index.rec.undersized":         {"Merge small indices or reduce their primary shard count", "合并小索引或减少其主分片数"},
	"index.rec.distribution":       {"Keep primary shards at or below %d per index", "每个索引的主分片数建议不超过 %d"},
	"index.rec.none":               {"✅ No changes needed for the current index configuration.", "✅ 当前索引配置无需调整。"},
	"typical.large":                {"Large index (%.1fGB)", "大型索引（%.1fGB）"},
	"typical.medium":               {"Medium index (%.1fMB)", "中型索引（%.1fMB）"},
	"typical.small":                {"Small index (%s documents)", "小型索引（%s 个文档）"},
	"typical.empty":                {"Empty index", "空索引"},
	"typical.app_main":             {"Main application index", "主要业务索引"},
	"typical.logs":                 {"Log index", "日志索引"},
	"typical.metrics":              {"Metrics index", "指标索引"},
	"typical.geo":                  {"Geo data index", "地理数据索引"},
	"typical.prefix":               {"%s series index", "%s 系列索引"},
	"color.green":                  {"Green", "绿色"},
	"color.yellow":                 {"Yellow", "黄色"},
	"color.red":                    {"Red", "红色"},
	"shard.primary":                {"Primary", "主分片"},
	"shard.replica":                {"Replica", "副本"},
	"pattern.system":               {"System indices", "系统索引"},
	"pattern.monitoring":           {"Monitoring indices", "监控索引"},
	"pattern.application":          {"Application indices", "业务索引"},
	"pattern.time_series":          {"Time-series indices", "时间序列索引"},
	"size.stats":                   {"Shard size statistics", "分片大小统计"},
	"size.min":                     {"Minimum", "最小值"},
	"size.max":                     {"Maximum", "最大值"},
	"size.avg":                     {"Average", "平均值"},
	"size.median":                  {"Median", "中位数"},
	"perf.index_total":             {"Indexed Documents", "索引文档总数"},
	"perf.delete_total":            {"Deleted Documents", "删除文档总数"},
	"perf.query_total":             {"Queries", "查询总数"},
	"perf.avg_query":               {"Avg Query Time", "平均查询耗时"},
	"perf.avg_fetch":               {"Avg Fetch Time", "平均获取耗时"},
	"perf.desc.index_total":        {"Index operations since node start", "节点启动以来的索引操作数"},
	"perf.desc.delete_total":       {"Delete operations since node start", "节点启动以来的删除操作数"},
	"perf.desc.query_total":        {"Query operations since node start", "节点启动以来的查询操作数"},
	"perf.desc.avg_query":          {"Query phase time per query", "每次查询的查询阶段耗时"},
	"perf.desc.avg_fetch":          {"Fetch phase time per query", "每次查询的获取阶段耗时"},
	"cache.memory":                 {"Cache Memory", "缓存内存"},
	"cache.hit_rate":               {"Hit Rate", "命中率"},
	"cache.total":                  {"Total Lookups", "查询总数"},
	"cache.hits":                   {"Hits", "命中次数"},
	"cache.evictions":              {"Evictions", "驱逐次数"},
	"cache.desc.memory":            {"Memory held by the query cache", "查询缓存占用内存"},
	"cache.desc.hit_rate":          {"Share of lookups served from cache", "命中缓存的查询占比"},
	"cache.desc.total":             {"Cache lookups", "缓存查询次数"},
	"cache.desc.hits":              {"Lookups served from cache", "命中缓存的次数"},
	"cache.desc.evictions":         {"Entries evicted for space", "因空间不足被驱逐的条目"},

	// log analysis
	"logs.overview":                {"6.1 Log File Overview", "6.1 日志文件概览"},
	"logs.no_dir":                  {"⚠️ The bundle has no logs directory, log analysis is skipped.", "⚠️ 诊断包中没有日志目录，跳过日志分析。"},
	"logs.no_dir_short":            {"⚠️ No logs directory.", "⚠️ 没有日志目录。"},
	"logs.no_files":                {"⚠️ The logs directory contains no log files.", "⚠️ 日志目录中没有日志文件。"},
	"logs.stats":                   {"6.1.1 Log File Statistics", "6.1.1 日志文件统计"},
	"logs.total_files":             {"Total Files", "日志文件总数"},
	"logs.total_size":              {"Total Size", "日志总大小"},
	"logs.latest_file":             {"Latest File", "最新文件"},
	"logs.latest_time":             {"Latest Modification", "最新修改时间"},
	"logs.desc.total_files":        {"Plain and compressed log files", "普通与压缩日志文件"},
	"logs.desc.total_size":         {"Size of all log files", "所有日志文件的大小"},
	"logs.desc.latest_file":        {"Most recently modified file", "最近修改的文件"},
	"logs.desc.latest_time":        {"Modification time of the latest file", "最新文件的修改时间"},
	"logs.files":                   {"6.1.2 Log File Details", "6.1.2 日志文件详情"},
	"logs.current":                 {"🟢 Current", "🟢 当前"},
	"logs.compressed":              {"📦 Compressed", "📦 已压缩"},
	"logs.files_total":             {"Total: %d files", "合计: %d 个文件"},
	"logs.errors":                  {"6.2 Error Log Analysis", "6.2 错误日志分析"},
	"logs.no_errors":               {"✅ No error entries found in the log files.", "✅ 日志文件中未发现错误条目。"},
	"logs.error_stats":             {"6.2.1 Error Statistics", "6.2.1 错误统计"},
	"logs.error_details":           {"6.2.2 Important Error Details", "6.2.2 重要错误详情"},
	"logs.type_count":              {"**%s** (%d occurrences)", "**%s**（%d 次）"},
	"logs.warnings":                {"6.3 Warning Analysis", "6.3 警告信息分析"},
	"logs.no_warnings":             {"✅ No warning entries found in the log files.", "✅ 日志文件中未发现警告条目。"},
	"logs.warning_stats":           {"6.3.1 Warning Statistics", "6.3.1 警告统计"},
	"logs.high_frequency":          {"6.3.2 High Frequency Warnings", "6.3.2 高频警告分析"},
	"logs.high_frequency_intro":    {"The following warnings occur frequently and deserve attention:", "以下警告出现频率较高，需要关注:"},
	"logs.occurred":                {"**%s**: occurred %d times", "**%s**: 出现 %d 次"},
	"logs.suggested_action":        {"Suggested action", "建议措施"},
	"logs.accumulation":            {"6.4 Log Accumulation Analysis", "6.4 日志累积情况分析"},
	"logs.accumulation_stats":      {"6.4.1 Accumulation Statistics", "6.4.1 累积情况统计"},
	"logs.compressed_files":        {"Compressed Files", "压缩文件数"},
	"logs.current_size":            {"Current Log Size", "当前日志大小"},
	"logs.accumulation_status":     {"Accumulation Status", "累积状态"},
	"logs.accumulation_advice":     {"6.4.2 Recommendations", "6.4.2 优化建议"},
	"logs.advice.too_many":         {"Too many log files, configure log rotation and retention", "日志文件过多，请配置日志轮转和保留策略"},
	"logs.advice.many":             {"Many log files, review the retention policy", "日志文件较多，请检查保留策略"},
	"logs.advice.too_large":        {"Logs use too much disk, clean up old logs and lower log levels", "日志占用磁盘过多，请清理旧日志并降低日志级别"},
	"logs.advice.large":            {"Logs are growing large, monitor disk usage", "日志体积较大，请关注磁盘使用"},
	"logs.advice.current_large":    {"The current log file is large, check for noisy loggers", "当前日志文件较大，请检查输出过多的日志"},
	"logs.events":                  {"6.5 Important Event Analysis", "6.5 重要事件分析"},
	"logs.no_events":               {"✅ No important cluster events found in the logs.", "✅ 日志中未发现重要的集群事件。"},
	"logs.events_overview":         {"6.5.1 Important Event Overview", "6.5.1 重要事件概览"},
	"logs.category_count":          {"**%s** (%d events)", "**%s**（%d 个事件）"},
	"accumulation.normal":          {"Normal", "正常"},
	"accumulation.moderate":        {"Moderate", "适中"},
	"accumulation.many":            {"Many files", "文件较多"},
	"accumulation.excessive":       {"Excessive", "过多"},
	"priority.high":                {"High", "高"},
	"priority.medium":              {"Medium", "中"},
	"priority.low":                 {"Low", "低"},
	"priority.label":               {"%s Priority", "%s优先级"},
	"suggest.heap":                 {"Review heap sizing and memory-heavy queries", "检查堆内存配置和高内存消耗的查询"},
	"suggest.disk":                 {"Free disk space or adjust the disk watermarks", "清理磁盘空间或调整磁盘水位线"},
	"suggest.slow":                 {"Review slow queries and index mappings", "检查慢查询和索引映射"},
	"suggest.connection":           {"Check network connectivity between nodes", "检查节点之间的网络连通性"},
	"suggest.timeout":              {"Check cluster load and timeout settings", "检查集群负载和超时设置"},
	"suggest.default":              {"Review the warning in context", "结合上下文检查该警告"},
	"event.cluster-changes":        {"Cluster changes", "集群变更"},
	"event.node-events":            {"Node events", "节点事件"},
	"event.shard-events":           {"Shard events", "分片事件"},
	"event.performance-issues":     {"Performance issues", "性能问题"},
	"event.other":                  {"Other events", "其他事件"},
	"loghealth.missing":            {"Log directory not found", "未找到日志目录"},
	"loghealth.good":               {"Log files are healthy", "日志文件状态良好"},
	"loghealth.too_many":           {"Too many log files", "日志文件过多"},
	"loghealth.many":               {"Many log files", "日志文件较多"},
	"loghealth.too_large":          {"Log files are too large", "日志文件过大"},
	"loghealth.large":              {"Log files are large", "日志文件较大"},
	"loghealth.errors":             {"Error entries found in logs", "日志中存在错误条目"},
	"loghealth.warnings":           {"Warning entries found in logs", "日志中存在警告条目"},
	"loghealth.detail.too_many":    {"%d log files, rotation or cleanup needed", "共 %d 个日志文件，需要轮转或清理"},
	"loghealth.detail.many":        {"%d log files, review retention", "共 %d 个日志文件，建议检查保留策略"},
	"loghealth.detail.too_large":   {"Total log size %s exceeds 1GB", "日志总大小 %s，超过 1GB"},
	"loghealth.detail.large":       {"Total log size %s exceeds 500MB", "日志总大小 %s，超过 500MB"},
	"loghealth.detail.errors":      {"ERROR entries present in the active log", "当前日志中存在 ERROR 条目"},
	"loghealth.detail.warnings":    {"WARN entries present in the active log", "当前日志中存在 WARN 条目"},
	"loghealth.detail.files":       {"%d log files (%d compressed)", "共 %d 个日志文件（%d 个已压缩）"},
	"loghealth.detail.size":        {"Total log size %s", "日志总大小 %s"},
	"loghealth.detail.clean":       {"No errors or warnings in the active log", "当前日志无错误和警告"},
	"loghealth.detail.normal":      {"Log rotation looks normal", "日志轮转正常"},

	// final assessment
	"assess.health":           {"7.1 Cluster Health Assessment", "7.1 集群健康状况评估"},
	"assess.no_health":        {"⚠️ Unable to retrieve cluster health status", "⚠️ 无法获取集群健康状态"},
	"assess.verdict.good": {"**Overall Assessment**: ✅ Cluster is running well\n\n" +
		"- All primary and replica shards are allocated\n" +
		"- No unassigned shards",
		"**总体评估**: ✅ 集群运行良好\n\n" +
			"- 所有主分片和副本分片均已分配\n" +
			"- 无未分配分片"},
	"assess.verdict.degraded": {"**Overall Assessment**: 🟡 Cluster is basically healthy, replica shard issues exist", "**总体评估**: 🟡 集群基本健康，存在副本分片问题"},
	"assess.verdict.critical": {"**Overall Assessment**: 🔴 Cluster has serious problems requiring immediate action", "**总体评估**: 🔴 集群存在严重问题，需要立即处理"},
	"assess.nodes_ok":         {"✅ All nodes' resource usage is normal", "✅ 所有节点资源使用正常"},
	"assess.nodes_hot":        {"**Node Resources**:", "**节点资源**:"},
	"assess.heap_line":        {"heap usage %.1f%%", "堆内存使用率 %.1f%%"},
	"assess.log_health":       {"Log Health", "日志健康"},
	"assess.confirm":          {"7.2 Configuration Items Requiring Business Confirmation", "7.2 需要业务确认的配置项"},
	"assess.confirm_intro":    {"The following settings may be intentional. Please confirm them with the cluster owner.", "以下配置可能是有意设置的，请与集群负责人确认。"},
	"assess.confirm_none":     {"✅ No configuration items requiring special confirmation were found.", "✅ 未发现需要特别确认的配置项。"},
	"assess.optimize":         {"7.3 Optimization Recommendations", "7.3 优化建议"},
	"assess.optimize_intro":   {"Recommendations are sorted by priority.", "建议按优先级排序。"},
	"assess.optimize_none":    {"✅ The cluster configuration is good, no obvious optimization suggestions.", "✅ 集群配置良好，暂无明显的优化建议。"},
	"assess.principles": {"**Optimization Implementation Principles**\n\n" +
		"- Verify every change in a test environment first\n" +
		"- Apply changes during low-traffic windows\n" +
		"- Change one thing at a time and monitor the effect\n" +
		"- Prepare a rollback plan before each change",
		"**优化实施原则**\n\n" +
			"- 所有变更先在测试环境验证\n" +
			"- 在业务低峰期实施变更\n" +
			"- 每次只调整一项并观察效果\n" +
			"- 每次变更前准备回滚方案"},
	"confirm.current":               {"Current State", "当前状态"},
	"confirm.reason":                {"Possible Reason", "可能原因"},
	"confirm.suggestion":            {"Suggested Action", "建议措施"},
	"confirm.rebalance.item":        {"Shard rebalancing disabled", "分片再平衡已禁用"},
	"confirm.rebalance.reason":      {"Maintenance window or a manual shard placement", "维护窗口或手动控制分片放置"},
	"confirm.rebalance.suggestion":  {"Restore the setting to all once maintenance is finished", "维护结束后恢复为 all"},
	"confirm.allocation.item":       {"Shard allocation restricted", "分片分配受限"},
	"confirm.allocation.reason":     {"Rolling restart or upgrade in progress", "正在进行滚动重启或升级"},
	"confirm.allocation.suggestion": {"Restore cluster.routing.allocation.enable to all after the operation", "操作完成后将 cluster.routing.allocation.enable 恢复为 all"},
	"confirm.large.item":            {"Very large indices present", "存在超大索引"},
	"confirm.large.current":         {"%d indices with more than 200 million documents", "%d 个索引的文档数超过 2 亿"},
	"confirm.large.reason":          {"Historical data kept in a single index", "历史数据保存在单个索引中"},
	"confirm.large.suggestion":      {"Confirm the retention needs and consider time-based indices", "确认数据保留需求，考虑按时间拆分索引"},
	"rec.field.description":         {"Description", "问题描述"},
	"rec.field.impact":              {"Expected Benefit", "预期收益"},
	"rec.field.action":              {"Action", "实施方案"},
	"rec.field.timing":              {"Timing", "实施时机"},
	"rec.heap_high.category":        {"Resources", "资源"},
	"rec.heap_high.title":           {"Relieve JVM heap pressure", "缓解 JVM 堆内存压力"},
	"rec.heap_high.description":     {"%d nodes use more than 85%% of their heap", "%d 个节点堆内存使用率超过 85%%"},
	"rec.heap_high.impact":          {"Fewer long GC pauses and circuit breaker trips", "减少长时间 GC 停顿和熔断"},
	"rec.heap_high.action":          {"Increase heap up to 31GB, add nodes or reduce expensive aggregations", "将堆内存增加至 31GB 以内、扩容节点或减少高开销聚合"},
	"rec.heap_high.timing":          {"Immediately", "立即"},
	"rec.heap_medium.category":      {"Resources", "资源"},
	"rec.heap_medium.title":         {"Watch JVM heap usage", "关注 JVM 堆内存使用"},
	"rec.heap_medium.description":   {"%d nodes use more than 70%% of their heap", "%d 个节点堆内存使用率超过 70%%"},
	"rec.heap_medium.impact":        {"Headroom for traffic peaks", "为流量高峰预留余量"},
	"rec.heap_medium.action":        {"Monitor heap trends and plan capacity", "监控堆内存趋势并规划容量"},
	"rec.heap_medium.timing":        {"Within a month", "一个月内"},
	"rec.oversized.category":        {"Shards", "分片"},
	"rec.oversized.title":           {"Split oversized shards", "拆分过大分片"},
	"rec.oversized.description":     {"%d indices average more than 50GB per shard", "%d 个索引的平均分片大小超过 50GB"},
	"rec.oversized.impact":          {"Faster recovery and more even load", "加快恢复速度，负载更均衡"},
	"rec.oversized.action":          {"Increase primary shards with the split API or rollover", "通过 split API 或滚动增加主分片数"},
	"rec.oversized.timing":          {"Next maintenance window", "下一个维护窗口"},
	"rec.undersized.category":       {"Shards", "分片"},
	"rec.undersized.title":          {"Consolidate small shards", "合并小分片"},
	"rec.undersized.description":    {"%d indices average less than 1GB per shard", "%d 个索引的平均分片大小小于 1GB"},
	"rec.undersized.impact":         {"Less cluster state and per-shard overhead", "减少集群状态和单分片开销"},
	"rec.undersized.action":         {"Shrink indices or merge them by time period", "收缩索引或按时间周期合并"},
	"rec.undersized.timing":         {"When convenient", "方便时"},
	"rec.ilm.category":              {"Lifecycle", "生命周期"},
	"rec.ilm.title":                 {"Configure index lifecycle management", "配置索引生命周期管理"},
	"rec.ilm.description":           {"No ILM policies are defined", "未定义 ILM 策略"},
	"rec.ilm.impact":                {"Automatic rollover and retention", "自动滚动和数据保留"},
	"rec.ilm.action":                {"Define ILM policies for time-series indices", "为时间序列索引定义 ILM 策略"},
	"rec.ilm.timing":                {"Within a month", "一个月内"},
}
